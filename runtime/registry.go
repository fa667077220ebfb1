package runtime

import (
	"chat-hub/contract"
	"sync"

	"github.com/google/uuid"
)

type Set map[string]struct{}

type Registry struct {
	mu             sync.RWMutex
	sessions       map[string]contract.EventSink // map participant -> Sink
	channelMembers map[uuid.UUID]Set             // map channel to users
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:       make(map[string]contract.EventSink),
		channelMembers: make(map[uuid.UUID]Set),
	}
}

// GetSinksForChannel retrieves all active communication channels for a specific channel.
// It performs a two-step lookup:
// 1. Identifies participant IDs associated with the channel via channelMembers.
// 2. Resolves those IDs into actual EventSinks using the sessions map.
//
// This decoupled approach ensures that even if a user follows multiple channels,
// their connection (Sink) is managed in a single place.
// Returns nil if the channel doesn't exist or has no members.
func (r *Registry) GetSinksForChannel(channelID uuid.UUID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.channelMembers[channelID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for participantID := range members {
		if sink, exists := r.sessions[participantID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers a participant's active connection and assigns them to a specific channel.
// It ensures thread-safe updates to both the global session directory and the channel-specific membership set.
// If the channel does not yet exist in the registry, it is initialized on the fly.
func (r *Registry) Subscribe(participantID string, channelID uuid.UUID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[participantID] = sink

	if _, ok := r.channelMembers[channelID]; !ok {
		r.channelMembers[channelID] = make(Set)
	}
	r.channelMembers[channelID][participantID] = struct{}{}
}

// Unsubscribe removes a participant from the registry and their current channel.
// It cleans up the session and ensures no empty sets are left in the channel map
// to prevent memory leaks over time.
func (r *Registry) Unsubscribe(participantID string, channelID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, participantID)

	if members, ok := r.channelMembers[channelID]; ok {
		delete(members, participantID)

		// If no one is left in the channel, remove the channel entry entirely
		if len(members) == 0 {
			delete(r.channelMembers, channelID)
		}
	}
}
