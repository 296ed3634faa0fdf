package renderer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sat8bit/cheatsheet/bus"
)

// Publisher は、項目をバスに流して最後にバスを閉じるものです。catalog.Catalog が満たします。
type Publisher interface {
	Publish(ctx context.Context, b bus.Bus) error
}

// Run は、すべてのレンダラーを1本のバスにつなぎ、publisher の配信が終わったら
// 各レンダラーの Finalize を呼びます。エラーはまとめて返します。
func Run(ctx context.Context, publisher Publisher, renderers ...Renderer) error {
	b := bus.NewMemoryBus()
	var wg sync.WaitGroup

	for _, r := range renderers {
		if err := r.Render(b, &wg); err != nil {
			b.Close()
			wg.Wait()
			return fmt.Errorf("failed to start renderer: %w", err)
		}
	}

	var errs []error
	if err := publisher.Publish(ctx, b); err != nil {
		errs = append(errs, err)
	}
	wg.Wait()

	for _, r := range renderers {
		if err := r.Finalize(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
