package sink

import (
	"chat-hub/domain"
	"chat-hub/domain/event"
	"context"
	"sync"
)

// Timeline holds a simple local timeline
type Timeline struct {
	Owner    string
	mu       sync.Mutex
	messages []domain.Message
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{
		Owner:    owner,
		messages: nil,
	}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessagePosted:
		t.mu.Lock()
		t.messages = append(t.messages, fromEvent(evt))
		t.mu.Unlock()
		return nil
	}
	return nil
}

func (t *Timeline) Messages() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func fromEvent(event event.MessagePosted) domain.Message {
	return domain.Message{
		ID:        event.ID,
		ChannelID: event.Channel,
		Author:    domain.UserInfo{Username: event.Author},
		Content:   event.Content,
		CreatedAt: event.At,
	}
}
