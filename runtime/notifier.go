package runtime

import (
	"context"
	"log/slog"
	"time"

	"chat-hub/contract"
	"chat-hub/domain/event"
)

// Notifier pushes committed events to the sinks subscribed to the event's
// channel. It provides best-effort fan-out with no guarantees regarding
// delivery, ordering, durability, or retries. Notifier is not a message
// broker: when the buffer is full the event is dropped, never the commit.
//
// Notifier is safe for concurrent use by multiple goroutines.
type Notifier struct {
	log         *slog.Logger
	registry    contract.IRegistry
	events      chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewNotifier(log *slog.Logger, registry contract.IRegistry, bufferSize int, sinkTimeout time.Duration) *Notifier {
	return &Notifier{
		log:         log,
		registry:    registry,
		events:      make(chan event.DomainEvent, bufferSize),
		sinkTimeout: sinkTimeout,
	}
}

// Publish enqueues an event without blocking the caller.
func (n *Notifier) Publish(e event.DomainEvent) {
	select {
	case n.events <- e:
	default:
		n.log.Warn("Notification buffer full, event dropped", "channel", e.ChannelID())
	}
}

// Run drains the event buffer until the context is canceled. Intended to be
// supervised: a panicking sink crashes the worker and the supervisor
// restarts it.
func (n *Notifier) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-n.events:
			n.fanout(ctx, evt)
		case <-ctx.Done():
			n.log.Debug("Context done, stopping notifier")
			return nil
		}
	}
}

func (n *Notifier) fanout(ctx context.Context, evt event.DomainEvent) {
	sinks := n.registry.GetSinksForChannel(evt.ChannelID())
	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, n.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			n.log.Warn("Sink rejected event", "channel", evt.ChannelID(), "error", err)
		}
		cancel()
	}
}
