package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sat8bit/cheatsheet/bus"
	"github.com/sat8bit/cheatsheet/fetcher"
	"github.com/sat8bit/cheatsheet/message"
	"github.com/sat8bit/cheatsheet/topic"
)

// Catalog は、チートシートの全項目を表示順に保持します。
// 生成後は読み取り専用なので、複数のゴルーチンから同時に参照しても安全です。
type Catalog struct {
	topics []*topic.Topic
}

// New は、Fetcher から一度だけトピックを取得し、検査してから Catalog を生成します。
// 失敗しうるのはこの生成処理だけです。
func New(ctx context.Context, f topic.Fetcher) (*Catalog, error) {
	topics, err := f.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topics: %w", err)
	}
	if err := topic.Validate(topics); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	frozen := make([]*topic.Topic, len(topics))
	for i, t := range topics {
		frozen[i] = t.Clone()
	}
	return &Catalog{topics: frozen}, nil
}

// NewEmbedded は、埋め込みの標準カタログから Catalog を生成します。
func NewEmbedded() (*Catalog, error) {
	return New(context.Background(), fetcher.NewEmbeddedFetcher())
}

// GetAll は、全項目を表示順で返します。
// 返すのはコピーなので、呼び出し側が書き換えてもカタログには影響しません。
func (c *Catalog) GetAll() []*topic.Topic {
	if c == nil {
		return nil
	}
	out := make([]*topic.Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = t.Clone()
	}
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.topics)
}

// Publish は、全項目を表示順にバスへ流し、最後にバスを閉じます。
// ctx が途中で終了した場合は KindError のメッセージを流してから閉じます。
func (c *Catalog) Publish(ctx context.Context, b bus.Bus) error {
	defer b.Close()

	total := len(c.topics)
	for i, t := range c.topics {
		err := b.Broadcast(ctx, &message.Message{
			Kind:  message.KindTopic,
			Topic: t.Clone(),
			Index: i + 1,
			Total: total,
			At:    time.Now(),
		})
		if err != nil {
			// 購読者は閉じるまで読み続けるので、キャンセルされていない ctx で中断を伝える
			_ = b.Broadcast(context.WithoutCancel(ctx), &message.Message{
				Kind:  message.KindError,
				Text:  err.Error(),
				Index: i + 1,
				Total: total,
				At:    time.Now(),
			})
			return fmt.Errorf("failed to publish topic %q: %w", t.Title, err)
		}
		slog.Debug("Published topic", "index", i+1, "title", t.Title)
	}
	return nil
}
