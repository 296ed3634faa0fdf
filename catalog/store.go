package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sat8bit/cheatsheet/topic"
)

// Encode は、カタログ全体を指定の形式で書き出します。
func (c *Catalog) Encode(format topic.Format) ([]byte, error) {
	return topic.Encode(c.GetAll(), format)
}

// Export は、カタログをファイルに保存します。形式は拡張子で決まります。
// 保存したファイルは fetcher.NewFileFetcher でそのまま読み戻せます。
func (c *Catalog) Export(path string) error {
	format, err := topic.FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := c.Encode(format)
	if err != nil {
		return fmt.Errorf("failed to encode catalog for %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}

	slog.Info("Catalog exported", "path", path, "format", format, "topics", c.Len())
	return nil
}
