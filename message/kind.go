package message

type Kind string

const (
	KindTopic Kind = "topic"
	KindError Kind = "error"
)
