package renderer

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/sat8bit/cheatsheet/bus"
	"github.com/sat8bit/cheatsheet/topic"
)

const markdownTemplate = `+++
title = {{ .Title }}
date = {{ .Date }}
tags = {{ .Tags }}
+++

{{ .Body }}
`

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`|`, `\|`,
	`&`, `\&`,
)

// EscapeMarkdown は、Markdown として解釈されうる文字をエスケープします。
// 行頭の見出し・リスト・区切り線の記号もエスケープします。
func EscapeMarkdown(s string) string {
	lines := strings.Split(markdownEscaper.Replace(s), "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return strings.Join(lines, "\n")
}

// escapeLineStart は、行頭のブロック記号 (#, +, -, =, "1." / "1)") の前にバックスラッシュを置きます。
func escapeLineStart(line string) string {
	rest := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(rest)]
	if rest == "" {
		return line
	}

	switch rest[0] {
	case '#', '+', '-', '=':
		return indent + `\` + rest
	}

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits <= 9 && digits < len(rest) && (rest[digits] == '.' || rest[digits] == ')') {
		return indent + rest[:digits] + `\` + rest[digits:]
	}
	return line
}

// Markdown は、1項目分の Markdown を返します。
// 見出し、C++ と Java のコードブロック、違いの箇条書きの順に並びます。
func Markdown(t *topic.Topic) string {
	return markdown(t, func(sb *strings.Builder, diffs []string) {
		fmt.Fprintf(sb, "**%s**\n\n", DifferencesLabel)
		writeBullets(sb, diffs)
	})
}

func markdown(t *topic.Topic, writeDifferences func(*strings.Builder, []string)) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### %s\n\n", EscapeMarkdown(t.Title))
	for _, lang := range []topic.Language{topic.LanguageCPP, topic.LanguageJava} {
		fmt.Fprintf(&sb, "**%s Implementation**\n\n", lang.Label())
		writeCodeBlock(&sb, lang, t.Snippet(lang))
	}
	writeDifferences(&sb, t.Differences)
	return sb.String()
}

func writeCodeBlock(sb *strings.Builder, lang topic.Language, code string) {
	f := fence(code)
	fmt.Fprintf(sb, "%s%s\n%s\n%s\n\n", f, lang, strings.TrimRight(code, "\n"), f)
}

func writeBullets(sb *strings.Builder, items []string) {
	for _, d := range items {
		fmt.Fprintf(sb, "- %s\n", EscapeMarkdown(d))
	}
	sb.WriteString("\n")
}

// fence は、code 中のどのバッククォートの連続よりも長いフェンスを返します。
func fence(code string) string {
	longest, run := 0, 0
	for _, r := range code {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}

// MarkdownRenderer は、カタログを Hugo の記事 (Markdown) として書き出すレンダラーです。
// 違いの一覧は LoveIt テーマの admonition ショートコードで折りたたみ表示にします。
type MarkdownRenderer struct {
	outputDir string
	page      Page
	filePath  string
	inbox     inbox
}

func NewMarkdownRenderer(outputDir string, page Page) *MarkdownRenderer {
	slug := Slug(page.Title)
	if slug == "" {
		slug = "cheatsheet"
	}
	return &MarkdownRenderer{
		outputDir: outputDir,
		page:      page,
		filePath:  filepath.Join(outputDir, slug+".md"),
	}
}

// FilePath は、書き出し先のファイルパスを返します。
func (r *MarkdownRenderer) FilePath() string {
	return r.filePath
}

func (r *MarkdownRenderer) Render(bus bus.Bus, wg *sync.WaitGroup) error {
	r.inbox.collect(bus, wg)
	return nil
}

func (r *MarkdownRenderer) Finalize() error {
	topics, failed := r.inbox.snapshot()
	if failed {
		slog.Info("Error message detected, skipping markdown generation.")
		return nil
	}
	if len(topics) == 0 {
		return nil
	}
	return r.render(topics)
}

func (r *MarkdownRenderer) render(topics []*topic.Topic) error {
	var body strings.Builder
	for _, t := range topics {
		body.WriteString(markdown(t, writeAdmonition))
		body.WriteString(Separator + "\n\n")
	}
	if r.page.Author != "" {
		fmt.Fprintf(&body, "Created by [%s](%s)\n", EscapeMarkdown(r.page.Author), r.page.AuthorURL)
	}

	tmpl, err := template.New("markdown").Parse(markdownTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse markdown template: %w", err)
	}

	data := struct {
		Date  string
		Title string
		Tags  string
		Body  string
	}{
		Date:  tomlQuote(r.page.date().Format("2006-01-02T15:04:05-07:00")),
		Title: tomlQuote(r.page.Title),
		Tags:  fmt.Sprintf("[%s, %s, %s]", tomlQuote("C++"), tomlQuote("Java"), tomlQuote("DSA")),
		Body:  body.String(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(r.filePath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write markdown file: %w", err)
	}

	slog.Info("Markdown file generated", "path", r.filePath, "topics", len(topics))
	return nil
}

func writeAdmonition(sb *strings.Builder, diffs []string) {
	fmt.Fprintf(sb, "{{< admonition type=note title=%q open=false >}}\n", DifferencesLabel)
	writeBullets(sb, diffs)
	sb.WriteString("{{< /admonition >}}\n\n")
}

var tomlEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

func tomlQuote(s string) string {
	return `"` + tomlEscaper.Replace(s) + `"`
}

var _ Renderer = (*MarkdownRenderer)(nil)
