package chat

import "time"

// ReplySource records which responder produced a reply.
type ReplySource string

const (
	SourceAI        ReplySource = "ai"
	SourceRuleBased ReplySource = "rule-based"
)

// Reply is the shared wire shape for chat answers across the REST and
// websocket transports.
type Reply struct {
	ID        string      `json:"replyId"`
	Text      string      `json:"reply"`
	Source    ReplySource `json:"source"`
	Timestamp time.Time   `json:"timestamp"`
}
