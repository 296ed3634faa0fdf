package fetcher

import (
	"context"
	"fmt"
	"os"

	"github.com/sat8bit/cheatsheet/topic"
)

// FileFetcher は、YAML または JSON のカタログファイルを読み込む topic.Fetcher 実装です。
// 形式は拡張子 (.yaml / .yml / .json) で決まります。
type FileFetcher struct {
	path string
}

// NewFileFetcher は新しい FileFetcher を生成します。
func NewFileFetcher(path string) topic.Fetcher {
	return &FileFetcher{path: path}
}

// Fetch は、ファイルを読み込んで []*topic.Topic に変換します。
func (f *FileFetcher) Fetch(ctx context.Context) ([]*topic.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := topic.FormatFromPath(f.path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", f.path, err)
	}

	topics, err := topic.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", f.path, err)
	}
	return topics, nil
}

var _ topic.Fetcher = (*FileFetcher)(nil)
