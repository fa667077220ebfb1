package runtime

import (
	"sync"
	"testing"

	"chat-hub/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_SubscribeAndLookup(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	channelID := uuid.New()
	otherChannel := uuid.New()

	aliceSink := mocks.NewMockEventSink(ctrl)
	bobSink := mocks.NewMockEventSink(ctrl)

	registry.Subscribe("alice", channelID, aliceSink)
	registry.Subscribe("bob", channelID, bobSink)
	registry.Subscribe("alice", otherChannel, aliceSink)

	req.Len(registry.GetSinksForChannel(channelID), 2)
	req.Len(registry.GetSinksForChannel(otherChannel), 1)
	req.Nil(registry.GetSinksForChannel(uuid.New()))
}

func TestRegistry_Unsubscribe(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	channelID := uuid.New()

	registry.Subscribe("alice", channelID, mocks.NewMockEventSink(ctrl))
	registry.Unsubscribe("alice", channelID)

	req.Nil(registry.GetSinksForChannel(channelID))

	// Unsubscribing twice must be harmless
	registry.Unsubscribe("alice", channelID)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	channelID := uuid.New()
	sink := mocks.NewMockEventSink(ctrl)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		participant := uuid.NewString()
		go func() {
			defer wg.Done()
			registry.Subscribe(participant, channelID, sink)
		}()
		go func() {
			defer wg.Done()
			registry.GetSinksForChannel(channelID)
		}()
	}
	wg.Wait()
}
