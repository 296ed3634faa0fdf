package renderer

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gorilla/feeds"
	"github.com/yuin/goldmark"

	"github.com/sat8bit/cheatsheet/bus"
	"github.com/sat8bit/cheatsheet/topic"
)

// FeedFormat は、フィードの形式です。
type FeedFormat string

const (
	FeedRSS  FeedFormat = "rss"
	FeedAtom FeedFormat = "atom"
)

// fileName は、形式ごとの書き出し先ファイル名を返します。
func (f FeedFormat) fileName() string {
	if f == FeedAtom {
		return "index.atom"
	}
	return "index.xml"
}

// buildFeed は、カタログから feeds.Feed を組み立てます。
// 項目ごとに1件の item を作り、本文は Markdown を HTML にしたものです。
// guid は項目のパーマリンク (BaseURL#slug) です。
func buildFeed(page Page, topics []*topic.Topic) (*feeds.Feed, error) {
	date := page.date()
	base := strings.TrimSuffix(page.BaseURL, "/") + "/"

	feed := &feeds.Feed{
		Title:       page.HTMLTitle,
		Link:        &feeds.Link{Href: base},
		Description: page.Title,
		Created:     date,
		Updated:     date,
	}
	if page.Author != "" {
		feed.Author = &feeds.Author{Name: page.Author}
	}

	for _, t := range topics {
		var body bytes.Buffer
		if err := goldmark.Convert([]byte(Markdown(t)), &body); err != nil {
			return nil, fmt.Errorf("failed to convert %q to html: %w", t.Title, err)
		}
		link := base + "#" + Slug(t.Title)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       t.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Description: body.String(),
			Created:     date,
		})
	}
	return feed, nil
}

// WriteFeed は、カタログを RSS 2.0 として w に書き出します。
func WriteFeed(w io.Writer, page Page, topics []*topic.Topic) error {
	return writeFeed(w, FeedRSS, page, topics)
}

// WriteAtom は、カタログを Atom として w に書き出します。
func WriteAtom(w io.Writer, page Page, topics []*topic.Topic) error {
	return writeFeed(w, FeedAtom, page, topics)
}

func writeFeed(w io.Writer, format FeedFormat, page Page, topics []*topic.Topic) error {
	feed, err := buildFeed(page, topics)
	if err != nil {
		return err
	}

	switch format {
	case FeedAtom:
		err = feed.WriteAtom(w)
	default:
		// RSS の managingEditor はメールアドレスが前提なので、著者は Atom にだけ載せる
		feed.Author = nil
		err = feed.WriteRss(w)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s feed: %w", format, err)
	}
	return nil
}

// FeedRenderer は、カタログを index.xml (RSS) または index.atom (Atom) として書き出すレンダラーです。
type FeedRenderer struct {
	outputDir string
	page      Page
	format    FeedFormat
	inbox     inbox
}

func NewFeedRenderer(outputDir string, page Page) *FeedRenderer {
	return &FeedRenderer{
		outputDir: outputDir,
		page:      page,
		format:    FeedRSS,
	}
}

func NewAtomRenderer(outputDir string, page Page) *FeedRenderer {
	return &FeedRenderer{
		outputDir: outputDir,
		page:      page,
		format:    FeedAtom,
	}
}

func (r *FeedRenderer) FilePath() string {
	return filepath.Join(r.outputDir, r.format.fileName())
}

func (r *FeedRenderer) Render(bus bus.Bus, wg *sync.WaitGroup) error {
	r.inbox.collect(bus, wg)
	return nil
}

func (r *FeedRenderer) Finalize() error {
	topics, failed := r.inbox.snapshot()
	if failed {
		slog.Info("Error message detected, skipping feed generation.")
		return nil
	}
	if len(topics) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := writeFeed(&buf, r.format, r.page, topics); err != nil {
		return err
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(r.FilePath(), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write feed file: %w", err)
	}

	slog.Info("Feed file generated", "path", r.FilePath(), "format", r.format, "items", len(topics))
	return nil
}

var _ Renderer = (*FeedRenderer)(nil)
