package fetcher

import (
	"context"
	"fmt"

	"github.com/sat8bit/cheatsheet/configs"
	"github.com/sat8bit/cheatsheet/topic"
)

// EmbeddedFetcher は、バイナリに埋め込まれた標準のカタログを読み込む topic.Fetcher 実装です。
type EmbeddedFetcher struct {
	data []byte
}

// NewEmbeddedFetcher は、configs.Catalog を読む EmbeddedFetcher を生成します。
func NewEmbeddedFetcher() topic.Fetcher {
	return &EmbeddedFetcher{data: configs.Catalog}
}

// Fetch は、埋め込みの YAML を読み込みます。
func (f *EmbeddedFetcher) Fetch(ctx context.Context) ([]*topic.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	topics, err := topic.Decode(f.data, topic.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
	}
	return topics, nil
}

var _ topic.Fetcher = (*EmbeddedFetcher)(nil)
