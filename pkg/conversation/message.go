package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a message.
type Sender int

const (
	SenderUser Sender = iota
	SenderBot
)

// String returns the label shown next to a message.
func (s Sender) String() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Bot"
	default:
		return "Unknown"
	}
}

// Message is one entry in the conversation log. Messages are never modified
// after they are appended.
type Message struct {
	ID        uuid.UUID
	Sender    Sender
	Text      string
	Timestamp time.Time
}

func newMessage(sender Sender, text string, at time.Time) Message {
	return Message{
		ID:        uuid.New(),
		Sender:    sender,
		Text:      text,
		Timestamp: at,
	}
}
