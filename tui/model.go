// Package tui は、チートシートを対話的に閲覧するターミナルブラウザです。
// 1画面に1項目を表示し、2つの実装を横に並べ、違いの一覧を折りたたみます。
package tui

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sat8bit/cheatsheet/renderer"
	"github.com/sat8bit/cheatsheet/topic"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	// この幅未満ではコードを横に並べず縦に積む
	sideBySideMinWidth = 100
	// viewport の上のタイトル行と空行、下のヘルプ行
	chromeHeight = 3
)

type Option func(*Model)

// WithHighlight は、コード欄を chroma で色付けします。
func WithHighlight(enabled bool) Option {
	return func(m *Model) { m.highlight = enabled }
}

type Model struct {
	title     string
	topics    []*topic.Topic
	current   int
	expanded  []bool
	highlight bool

	width    int
	height   int
	viewport viewport.Model
	keys     keyMap
	styles   styles
}

func New(title string, topics []*topic.Topic, opts ...Option) Model {
	m := Model{
		title:    title,
		topics:   topics,
		expanded: make([]bool, len(topics)),
		width:    defaultWidth,
		height:   defaultHeight,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		keys:     defaultKeyMap(),
		styles:   defaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.current < len(m.topics)-1 {
				m.current++
				m.refresh()
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if m.current > 0 {
				m.current--
				m.refresh()
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if len(m.expanded) > 0 {
				m.expanded[m.current] = !m.expanded[m.current]
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.ToggleAll):
			m.toggleAll()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.title))
	sb.WriteString("\n\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.helpView())
	return sb.String()
}

// Current は、表示中の項目の添字を返します。
func (m Model) Current() int {
	return m.current
}

// Expanded は、項目 i の違いの一覧が開いているかを返します。
func (m Model) Expanded(i int) bool {
	return i >= 0 && i < len(m.expanded) && m.expanded[i]
}

// toggleAll は、すべて開いていれば閉じ、そうでなければすべて開きます。
func (m *Model) toggleAll() {
	open := false
	for _, e := range m.expanded {
		if !e {
			open = true
			break
		}
	}
	for i := range m.expanded {
		m.expanded[i] = open
	}
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTopic())
}

func (m Model) renderTopic() string {
	if len(m.topics) == 0 {
		return "No topics."
	}
	t := m.topics[m.current]

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(fmt.Sprintf("%d/%d  %s", m.current+1, len(m.topics), t.Title)))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderPanes(t))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderDifferences(t))
	return sb.String()
}

func (m Model) renderPanes(t *topic.Topic) string {
	sideBySide := m.width >= sideBySideMinWidth
	paneWidth := m.width - 2
	if sideBySide {
		// 枠付きの2つの欄と1桁の隙間
		paneWidth = (m.width-1)/2 - 2
	}
	paneWidth = max(paneWidth, 20)

	panes := make([]string, 0, 2)
	for _, lang := range []topic.Language{topic.LanguageCPP, topic.LanguageJava} {
		body := m.styles.Label.Render(lang.Label()+" Implementation") + "\n\n" + m.code(t.Snippet(lang), lang)
		panes = append(panes, m.styles.Pane.Width(paneWidth).Render(body))
	}

	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, panes[0], " ", panes[1])
	}
	return lipgloss.JoinVertical(lipgloss.Left, panes...)
}

func (m Model) code(src string, lang topic.Language) string {
	if !m.highlight {
		return src
	}
	var sb strings.Builder
	if err := quick.Highlight(&sb, src, string(lang), "terminal256", renderer.CodeStyle); err != nil {
		return src
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderDifferences(t *topic.Topic) string {
	marker := "▸"
	if m.expanded[m.current] {
		marker = "▾"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Expander.Render(marker + " " + renderer.DifferencesLabel))
	if m.expanded[m.current] {
		for _, d := range t.Differences {
			sb.WriteString("\n")
			sb.WriteString(m.styles.Bullet.Render("• " + d))
		}
	}
	return sb.String()
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keys.help())+1)
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	parts = append(parts, "↑/↓ scroll")
	return m.styles.Help.Render(strings.Join(parts, " • "))
}

var _ tea.Model = Model{}
