package renderer

import (
	"log/slog"
	"sync"

	"github.com/sat8bit/cheatsheet/bus"
	"github.com/sat8bit/cheatsheet/message"
	"github.com/sat8bit/cheatsheet/topic"
)

// inbox は、バスから受信した項目を Finalize まで溜めておくための共通部品です。
type inbox struct {
	mu     sync.Mutex
	topics []*topic.Topic
	failed bool
}

func (in *inbox) collect(b bus.Bus, wg *sync.WaitGroup) {
	ch := b.Subscribe()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for msg := range ch {
			in.add(msg)
		}
	}()
}

func (in *inbox) add(msg *message.Message) {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch msg.Kind {
	case message.KindTopic:
		in.topics = append(in.topics, msg.Topic)
	case message.KindError:
		slog.Warn("Publishing was interrupted", "index", msg.Index, "total", msg.Total, "reason", msg.Text)
		in.failed = true
	}
}

// snapshot は、受信済みの項目と、途中でエラーを受け取ったかどうかを返します。
func (in *inbox) snapshot() ([]*topic.Topic, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.topics, in.failed
}
