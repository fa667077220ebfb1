package domain

import (
	"testing"
	"time"

	"chat-hub/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func makeChannel(visibility Visibility, access AccessControl, owner uuid.UUID) Channel {
	return NewChannel(visibility, ChannelMeta{
		ID:     uuid.New(),
		Owner:  UserInfo{ID: owner, Username: "owner"},
		Name:   ChannelName{Local: "general", OwnerUsername: "owner"},
		Access: access,
	})
}

func membershipWith(channel Channel, userID uuid.UUID, access AccessControl) *Membership {
	return &Membership{
		ChannelID: channel.Meta().ID,
		UserID:    userID,
		Access:    access,
		JoinedAt:  time.Now(),
	}
}

func TestCanRead(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	memberID := uuid.New()

	t.Run("should allow anyone on a public channel", func(t *testing.T) {
		req := require.New(t)
		channel := makeChannel(Public, ReadOnly, ownerID)

		req.True(CanRead(strangerID, channel, nil))
	})

	t.Run("should allow the owner on a private channel", func(t *testing.T) {
		req := require.New(t)
		channel := makeChannel(Private, ReadOnly, ownerID)

		req.True(CanRead(ownerID, channel, nil))
	})

	t.Run("should allow a member on a private channel", func(t *testing.T) {
		req := require.New(t)
		channel := makeChannel(Private, ReadOnly, ownerID)

		req.True(CanRead(memberID, channel, membershipWith(channel, memberID, ReadOnly)))
	})

	t.Run("should deny a stranger on a private channel", func(t *testing.T) {
		req := require.New(t)
		channel := makeChannel(Private, ReadWrite, ownerID)

		req.False(CanRead(strangerID, channel, nil))
	})
}

func TestCanWrite(t *testing.T) {
	ownerID := uuid.New()
	memberID := uuid.New()
	strangerID := uuid.New()

	t.Run("should always allow the owner", func(t *testing.T) {
		req := require.New(t)

		req.NoError(CanWrite(ownerID, makeChannel(Public, ReadOnly, ownerID), nil))
		req.NoError(CanWrite(ownerID, makeChannel(Private, ReadOnly, ownerID), nil))
	})

	t.Run("should deny a non-member regardless of visibility", func(t *testing.T) {
		req := require.New(t)

		err := CanWrite(strangerID, makeChannel(Public, ReadWrite, ownerID), nil)
		req.ErrorIs(err, errors.ErrUserNotInChannel)

		err = CanWrite(strangerID, makeChannel(Private, ReadWrite, ownerID), nil)
		req.ErrorIs(err, errors.ErrUserNotInChannel)
	})

	t.Run("should follow the channel policy on a public channel", func(t *testing.T) {
		req := require.New(t)

		writable := makeChannel(Public, ReadWrite, ownerID)
		req.NoError(CanWrite(memberID, writable, membershipWith(writable, memberID, ReadOnly)))

		readOnly := makeChannel(Public, ReadOnly, ownerID)
		err := CanWrite(memberID, readOnly, membershipWith(readOnly, memberID, ReadWrite))
		req.ErrorIs(err, errors.ErrUserDoesNotHaveAccess)
	})

	t.Run("should follow the member grant on a private channel", func(t *testing.T) {
		req := require.New(t)

		channel := makeChannel(Private, ReadOnly, ownerID)
		req.NoError(CanWrite(memberID, channel, membershipWith(channel, memberID, ReadWrite)))

		err := CanWrite(memberID, channel, membershipWith(channel, memberID, ReadOnly))
		req.ErrorIs(err, errors.ErrUserDoesNotHaveAccess)
	})
}
