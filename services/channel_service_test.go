package services

import (
	"testing"
	"time"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/mocks"
	"chat-hub/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Smallest valid PNG header; enough for content-type sniffing.
var pngIcon = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func newChannelServiceFixture(t *testing.T) (*repositories.MemoryTransactionManager, IChannelService, *fakeClock) {
	t.Helper()
	tm := repositories.NewMemoryTransactionManager(nil)
	clock := newFakeClock()
	invites := NewInvitationService(auth.IdentityEncryptor{}, clock.Now)
	return tm, NewChannelService(tm, invites, clock.Now), clock
}

func TestChannelService_CreateChannel(t *testing.T) {
	tm, svc, _ := newChannelServiceFixture(t)
	owner := seedUser(t, tm, "alice", "hash")

	t.Run("should create a public channel under the owner's name", func(t *testing.T) {
		req := require.New(t)

		channel, err := svc.CreateChannel(CreateChannelRequest{
			OwnerID:     owner.ID,
			LocalName:   "General",
			Visibility:  "public",
			Access:      "read_write",
			Description: "the one channel everyone is in",
			Icon:        pngIcon,
		})
		req.NoError(err)
		req.Equal(domain.Public, channel.Visibility())
		// Local names are case-insensitive, stored lowercased
		req.Equal("@alice/general", channel.Meta().Name.String())
		req.Equal(owner.ID, channel.Meta().Owner.ID)

		req.NoError(tm.ReadOnly(func(r repositories.Repos) error {
			fetched, err := r.Channels.GetChannelByName(channel.Meta().Name)
			req.NoError(err)
			req.Equal(channel.Meta().ID, fetched.Meta().ID)
			return nil
		}))
	})

	t.Run("should create a private channel", func(t *testing.T) {
		req := require.New(t)

		channel, err := svc.CreateChannel(CreateChannelRequest{
			OwnerID:    owner.ID,
			LocalName:  "secret",
			Visibility: "PRIVATE",
			Access:     "READ_ONLY",
		})
		req.NoError(err)
		req.Equal(domain.Private, channel.Visibility())
	})

	t.Run("should reject an invalid visibility", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.CreateChannel(CreateChannelRequest{
			OwnerID: owner.ID, LocalName: "x", Visibility: "hidden", Access: "read_only",
		})
		req.ErrorIs(err, errors.ErrInvalidChannelVisibility)
	})

	t.Run("should reject an invalid access control", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.CreateChannel(CreateChannelRequest{
			OwnerID: owner.ID, LocalName: "x", Visibility: "public", Access: "admin",
		})
		req.ErrorIs(err, errors.ErrInvalidChannelAccessControl)
	})

	t.Run("should reject a local name with reserved characters", func(t *testing.T) {
		req := require.New(t)

		for _, name := range []string{"", "has space", "has/slash", "has@at"} {
			_, err := svc.CreateChannel(CreateChannelRequest{
				OwnerID: owner.ID, LocalName: name, Visibility: "public", Access: "read_only",
			})
			req.ErrorIs(err, errors.ErrInvalidChannelInfo, "name %q", name)
		}
	})

	t.Run("should reject a non-image icon", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.CreateChannel(CreateChannelRequest{
			OwnerID: owner.ID, LocalName: "y", Visibility: "public", Access: "read_only",
			Icon: []byte("#!/bin/sh\nrm -rf /"),
		})
		req.ErrorIs(err, errors.ErrInvalidChannelInfo)
	})

	t.Run("should reject a duplicate name for the same owner", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.CreateChannel(CreateChannelRequest{
			OwnerID: owner.ID, LocalName: "general", Visibility: "public", Access: "read_only",
		})
		req.ErrorIs(err, errors.ErrUnableToCreateChannel)
	})

	t.Run("should allow the same local name for another owner", func(t *testing.T) {
		req := require.New(t)
		other := seedUser(t, tm, "bob", "hash")

		channel, err := svc.CreateChannel(CreateChannelRequest{
			OwnerID: other.ID, LocalName: "general", Visibility: "public", Access: "read_only",
		})
		req.NoError(err)
		req.Equal("@bob/general", channel.Meta().Name.String())
	})

	t.Run("should reject an unknown owner", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.CreateChannel(CreateChannelRequest{
			OwnerID: uuid.New(), LocalName: "orphan", Visibility: "public", Access: "read_only",
		})
		req.ErrorIs(err, errors.ErrUserNotFound)
	})
}

func TestChannelService_JoinViaInvitation(t *testing.T) {
	req := require.New(t)
	tm, svc, _ := newChannelServiceFixture(t)
	owner := seedUser(t, tm, "alice", "hash")
	joiner := seedUser(t, tm, "bob", "hash")

	channel, err := svc.CreateChannel(CreateChannelRequest{
		OwnerID: owner.ID, LocalName: "club", Visibility: "private", Access: "read_only",
	})
	req.NoError(err)

	code, err := svc.IssueChannelInvitation(channel.Meta().ID, owner.ID, 1, time.Hour, domain.ReadWrite)
	req.NoError(err)

	membership, err := svc.JoinChannel(code, joiner.ID)
	req.NoError(err)
	req.Equal(channel.Meta().ID, membership.ChannelID)
	req.Equal(domain.ReadWrite, membership.Access)

	t.Run("should refuse an unknown user", func(t *testing.T) {
		req := require.New(t)

		again, err := svc.IssueChannelInvitation(channel.Meta().ID, owner.ID, 1, time.Hour, domain.ReadOnly)
		req.NoError(err)

		_, err = svc.JoinChannel(again, uuid.New())
		req.ErrorIs(err, errors.ErrUserNotFound)
	})

	t.Run("should refuse a malformed access control on issue", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.IssueChannelInvitation(channel.Meta().ID, owner.ID, 1, time.Hour, domain.AccessControl("OWNER"))
		req.ErrorIs(err, errors.ErrInvalidChannelAccessControl)
	})
}

// Validation happens before any unit of work opens.
func TestChannelService_ValidatesBeforeUnitOfWork(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tm := mocks.NewMockITransactionManager(ctrl)
	clock := newFakeClock()
	svc := NewChannelService(tm, NewInvitationService(auth.IdentityEncryptor{}, clock.Now), clock.Now)

	tm.EXPECT().ReadWrite(gomock.Any()).Times(0)
	tm.EXPECT().ReadOnly(gomock.Any()).Times(0)

	_, err := svc.CreateChannel(CreateChannelRequest{
		OwnerID: uuid.New(), LocalName: "bad name", Visibility: "public", Access: "read_only",
	})
	req.ErrorIs(err, errors.ErrInvalidChannelInfo)
}
