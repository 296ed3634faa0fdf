package bus

import (
	"context"
	"fmt"
	"sync"

	"github.com/sat8bit/cheatsheet/message"
)

const subscriberBuffer = 16

// MemoryBus は bus.Bus インターフェースのインメモリ実装です。
// 購読者ごとのチャネルに、ブロードキャストされたメッセージを同じ順序で配送します。
type MemoryBus struct {
	subscribers []chan *message.Message

	// subscribers と isClosed を保護する
	mu sync.RWMutex

	isClosed bool
}

// NewMemoryBus は新しい MemoryBus を生成します。
func NewMemoryBus() Bus {
	return &MemoryBus{
		subscribers: make([]chan *message.Message, 0),
	}
}

// Broadcast はメッセージをすべての購読者に配送します。
// メッセージは落としません。購読者のバッファが一杯なら空くまで待ち、
// その間に ctx が終了した場合はエラーを返します。
func (b *MemoryBus) Broadcast(ctx context.Context, m *message.Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.isClosed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("broadcast interrupted: %w", err)
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- m:
		case <-ctx.Done():
			return fmt.Errorf("broadcast interrupted: %w", ctx.Err())
		}
	}

	return nil
}

// Subscribe は新しい購読者を追加し、メッセージを受信するためのチャネルを返します。
// 閉じたバスに対しては、閉じたチャネルを返します。
func (b *MemoryBus) Subscribe() <-chan *message.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan *message.Message, subscriberBuffer)

	if b.isClosed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	return ch
}

// Close はバスを閉じ、すべての購読者チャネルをクローズします。何度呼んでも安全です。
func (b *MemoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.isClosed {
		b.isClosed = true
		for _, ch := range b.subscribers {
			close(ch)
		}
		b.subscribers = nil
	}
}

// コンパイル時に Bus インターフェースを実装していることを保証します。
var _ Bus = (*MemoryBus)(nil)
