package repositories

import (
	"fmt"
	"testing"
	"time"

	"chat-hub/domain"
	"chat-hub/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_Parity(t *testing.T) {
	tm := NewMemoryTransactionManager(nil)
	alice := someUser("alice")

	t.Run("should mirror user uniqueness and not-found semantics", func(t *testing.T) {
		req := require.New(t)

		req.NoError(tm.ReadWrite(func(r Repos) error {
			return r.Users.CreateUser(alice)
		}))
		err := tm.ReadWrite(func(r Repos) error {
			return r.Users.CreateUser(someUser("alice"))
		})
		req.ErrorIs(err, errors.ErrUserAlreadyExists)

		req.NoError(tm.ReadOnly(func(r Repos) error {
			_, err := r.Users.GetUserByUsername("nobody")
			req.ErrorIs(err, errors.ErrUserNotFound)

			_, err = r.Users.GetToken("absent")
			req.ErrorIs(err, errors.ErrTokenNotFound)
			return nil
		}))
	})

	t.Run("should order tokens by creation time then token bytes", func(t *testing.T) {
		req := require.New(t)
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		req.NoError(tm.ReadWrite(func(r Repos) error {
			// Same creation instant: order falls back to token bytes
			if err := r.Users.PutToken(domain.NewUserToken(alice.ID, "tok-b", base, base.Add(time.Hour))); err != nil {
				return err
			}
			if err := r.Users.PutToken(domain.NewUserToken(alice.ID, "tok-a", base, base.Add(time.Hour))); err != nil {
				return err
			}
			return r.Users.PutToken(domain.NewUserToken(alice.ID, "tok-0", base.Add(-time.Minute), base.Add(time.Hour)))
		}))

		req.NoError(tm.ReadOnly(func(r Repos) error {
			tokens, err := r.Users.TokensByUser(alice.ID)
			req.NoError(err)
			req.Len(tokens, 3)
			req.Equal("tok-0", tokens[0].Token)
			req.Equal("tok-a", tokens[1].Token)
			req.Equal("tok-b", tokens[2].Token)
			return nil
		}))
	})
}

func TestMemoryChannelRepository_InvitationSlot(t *testing.T) {
	req := require.New(t)
	tm := NewMemoryTransactionManager(nil)
	owner := someUser("carol")
	channel := someChannel(owner, domain.Public, domain.ReadWrite)
	expires := time.Now().Add(time.Hour)

	req.NoError(tm.ReadWrite(func(r Repos) error {
		if err := r.Users.CreateUser(owner); err != nil {
			return err
		}
		if err := r.Channels.CreateChannel(channel); err != nil {
			return err
		}
		return r.Channels.PutChannelInvitation("digest-old", domain.ChannelInvitation{
			ChannelID: channel.Meta().ID, Code: "sealed-old", Access: domain.ReadOnly, MaxUses: 3, ExpiresAt: expires,
		})
	}))

	req.NoError(tm.ReadWrite(func(r Repos) error {
		return r.Channels.PutChannelInvitation("digest-new", domain.ChannelInvitation{
			ChannelID: channel.Meta().ID, Code: "sealed-new", Access: domain.ReadWrite, MaxUses: 1, ExpiresAt: expires,
		})
	}))

	req.NoError(tm.ReadOnly(func(r Repos) error {
		_, digest, err := r.Channels.GetChannelInvitation(channel.Meta().ID)
		req.NoError(err)
		req.Equal("digest-new", digest)

		_, err = r.Channels.GetChannelInvitationByDigest("digest-old")
		req.ErrorIs(err, errors.ErrInvitationCodeInvalid)
		return nil
	}))
}

func TestMemoryMessageRepository_CursorPaging(t *testing.T) {
	req := require.New(t)
	tm := NewMemoryTransactionManager(lo.ToPtr(2))
	author := someUser("erin")
	channelID := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	req.NoError(tm.ReadWrite(func(r Repos) error {
		for i := 0; i < 5; i++ {
			msg := domain.Message{
				ID:        uuid.New(),
				ChannelID: channelID,
				Author:    author.Info(),
				Content:   fmt.Sprintf("message %d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			}
			if err := r.Messages.StoreMessage(msg); err != nil {
				return err
			}
		}
		return nil
	}))

	var all []domain.Message
	var cursor *string
	for {
		var page []domain.Message
		req.NoError(tm.ReadOnly(func(r Repos) error {
			var err error
			page, cursor, err = r.Messages.GetMessages(channelID, cursor)
			return err
		}))
		all = append(all, page...)
		if cursor == nil {
			break
		}
	}

	req.Len(all, 5)
	req.Equal("message 4", all[0].Content)
	req.Equal("message 0", all[4].Content)
}
