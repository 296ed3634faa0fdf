package bus

import (
	"context"
	"errors"

	"github.com/sat8bit/cheatsheet/message"
)

// ErrClosed は、閉じたバスに送信しようとしたことを示します。
var ErrClosed = errors.New("bus is closed")

// Busはメッセージの送受信責務を持つ
type Bus interface {
	Broadcast(ctx context.Context, m *message.Message) error
	Subscribe() <-chan *message.Message
	Close()
}
