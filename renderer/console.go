package renderer

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/sat8bit/cheatsheet/bus"
	"github.com/sat8bit/cheatsheet/message"
)

// ConsoleRenderer は、受信した項目を順に端末向けの Markdown として書き出すレンダラーです。
// 整形には glamour を使います。
type ConsoleRenderer struct {
	w    io.Writer
	page Page
	term *glamour.TermRenderer

	mu  sync.Mutex
	err error
}

// NewConsoleRenderer は、新しい ConsoleRenderer を生成します。
// style は glamour の標準スタイル名（"auto", "dark", "light", "notty" など）です。
func NewConsoleRenderer(w io.Writer, page Page, style string, width int) (*ConsoleRenderer, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	opts := []glamour.TermRendererOption{styleOpt}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	return &ConsoleRenderer{
		w:    w,
		page: page,
		term: term,
	}, nil
}

func (c *ConsoleRenderer) Render(bus bus.Bus, wg *sync.WaitGroup) error {
	ch := bus.Subscribe()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if c.page.Title != "" {
			c.write(fmt.Sprintf("# %s\n\n%s\n", EscapeMarkdown(c.page.Title), Separator))
		}
		for o := range ch {
			switch o.Kind {
			case message.KindError:
				c.setErr(fmt.Errorf("rendering stopped at topic %d/%d: %s", o.Index, o.Total, o.Text))
			default:
				c.write(Markdown(o.Topic) + Separator + "\n")
			}
		}
	}()

	return nil
}

// Finalize は、フッターを書き出し、途中で起きた最初のエラーを返します。
func (c *ConsoleRenderer) Finalize() error {
	if c.page.Author != "" {
		c.write(fmt.Sprintf("Created by [%s](%s)\n", EscapeMarkdown(c.page.Author), c.page.AuthorURL))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *ConsoleRenderer) write(md string) {
	out, err := c.term.Render(md)
	if err != nil {
		c.setErr(fmt.Errorf("failed to render markdown: %w", err))
		return
	}
	if _, err := io.WriteString(c.w, out); err != nil {
		c.setErr(fmt.Errorf("failed to write to console: %w", err))
	}
}

func (c *ConsoleRenderer) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

var _ Renderer = (*ConsoleRenderer)(nil)
