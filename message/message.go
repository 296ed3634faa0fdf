package message

import (
	"time"

	"github.com/sat8bit/cheatsheet/topic"
)

// Message は、バスに流れる1件の通知です。
// KindTopic ではカタログ順の1項目を、KindError では配信の中断を表します。
type Message struct {
	Kind  Kind
	Topic *topic.Topic
	// Index は 1 始まりの表示順、Total はカタログの件数です。
	Index int
	Total int
	Text  string
	At    time.Time
}

func (m *Message) IsError() bool {
	return m.Kind == KindError
}
