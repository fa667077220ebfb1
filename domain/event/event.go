package event

import (
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	ChannelID() uuid.UUID
}

// MessagePosted is emitted after a message commit succeeds. Delivery to
// connected clients is best effort; the engine never waits on it.
type MessagePosted struct {
	ID      uuid.UUID
	Channel uuid.UUID
	Author  string
	Content string
	At      time.Time
}

func (m MessagePosted) ChannelID() uuid.UUID {
	return m.Channel
}
