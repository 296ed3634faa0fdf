package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"

	"github.com/sat8bit/cheatsheet/bus"
	"github.com/sat8bit/cheatsheet/topic"
)

// CodeStyle は、HTML のコードブロックに使う chroma のスタイル名です。
const CodeStyle = "monokai"

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Page.HTMLTitle }}</title>
<style>
  body { background-color: #0E1117; color: white; font-family: sans-serif; margin: 0 auto; max-width: 1400px; padding: 2rem; }
  a { color: #4CAF50; text-decoration: none; }
  hr { border: 0; border-top: 1px solid #333; margin: 2rem 0; }
  .header { color: #4CAF50; border-bottom: 2px solid #4CAF50; padding-bottom: .3rem; }
  .columns { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; }
  .code-container { background-color: #000000; padding: 20px; border-radius: 10px; margin: 15px 0; overflow-x: auto; font-family: 'Courier New', monospace; }
  .code-container pre { margin: 0; background-color: transparent !important; }
  details.expander { background-color: #1a1a1a; border-radius: 8px; padding: .6rem 1rem; }
  details.expander summary { cursor: pointer; }
  @media (max-width: 900px) { .columns { grid-template-columns: 1fr; } }
</style>
</head>
<body>
<h1>{{ .Page.Title }}</h1>
<hr>
{{ range .Topics }}<section class="topic" id="{{ .Slug }}">
  <h3 class="header"><a href="#{{ .Slug }}">{{ .Title }}</a></h3>
  <div class="columns">
    <div class="column">
      <p><strong>C++ Implementation</strong></p>
      <div class="code-container">{{ .CPP }}</div>
    </div>
    <div class="column">
      <p><strong>Java Implementation</strong></p>
      <div class="code-container">{{ .Java }}</div>
    </div>
  </div>
  <details class="expander">
    <summary>&#x1F4DA; {{ $.Label }}</summary>
    {{ .Differences }}
  </details>
</section>
<hr>
{{ end }}{{ if .Page.Author }}<footer>Created by <a href="{{ .Page.AuthorURL }}" target="_blank" rel="noopener">{{ .Page.Author }}</a></footer>
{{ end }}</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(htmlTemplate))

type htmlTopic struct {
	Slug        string
	Title       string
	CPP         template.HTML
	Java        template.HTML
	Differences template.HTML
}

// WriteHTML は、カタログ全体を1枚の HTML ページとして w に書き出します。
// Web サーバーとファイル出力の両方から使います。
func WriteHTML(w io.Writer, page Page, topics []*topic.Topic) error {
	items := make([]htmlTopic, 0, len(topics))
	for _, t := range topics {
		item := htmlTopic{
			Slug:  Slug(t.Title),
			Title: t.Title,
		}

		var err error
		if item.CPP, err = highlightHTML(t.CPP, topic.LanguageCPP); err != nil {
			return fmt.Errorf("failed to highlight %q: %w", t.Title, err)
		}
		if item.Java, err = highlightHTML(t.Java, topic.LanguageJava); err != nil {
			return fmt.Errorf("failed to highlight %q: %w", t.Title, err)
		}
		if item.Differences, err = differencesHTML(t.Differences); err != nil {
			return fmt.Errorf("failed to render differences of %q: %w", t.Title, err)
		}
		items = append(items, item)
	}

	data := struct {
		Page   Page
		Label  string
		Topics []htmlTopic
	}{
		Page:   page,
		Label:  DifferencesLabel,
		Topics: items,
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute html template: %w", err)
	}
	return nil
}

func highlightHTML(code string, lang topic.Language) (template.HTML, error) {
	lexer := lexers.Get(string(lang))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.TabWidth(4))
	if err := formatter.Format(&buf, styles.Get(CodeStyle), iterator); err != nil {
		return "", err
	}
	// chroma の出力はエスケープ済み
	return template.HTML(buf.String()), nil
}

// differencesHTML は、違いの箇条書きを goldmark で HTML にします。
// 各項目は事前にエスケープするので、生の HTML は出力されません。
func differencesHTML(diffs []string) (template.HTML, error) {
	var sb strings.Builder
	writeBullets(&sb, diffs)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(sb.String()), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// HTMLRenderer は、カタログを index.html として書き出すレンダラーです。
type HTMLRenderer struct {
	outputDir string
	page      Page
	inbox     inbox
}

func NewHTMLRenderer(outputDir string, page Page) *HTMLRenderer {
	return &HTMLRenderer{
		outputDir: outputDir,
		page:      page,
	}
}

func (r *HTMLRenderer) FilePath() string {
	return filepath.Join(r.outputDir, "index.html")
}

func (r *HTMLRenderer) Render(bus bus.Bus, wg *sync.WaitGroup) error {
	r.inbox.collect(bus, wg)
	return nil
}

func (r *HTMLRenderer) Finalize() error {
	topics, failed := r.inbox.snapshot()
	if failed {
		slog.Info("Error message detected, skipping html generation.")
		return nil
	}
	if len(topics) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, r.page, topics); err != nil {
		return err
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(r.FilePath(), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write html file: %w", err)
	}

	slog.Info("HTML file generated", "path", r.FilePath(), "topics", len(topics))
	return nil
}

var _ Renderer = (*HTMLRenderer)(nil)
