package services

import (
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func seedChannel(t *testing.T, tm repositories.ITransactionManager, owner domain.User, visibility domain.Visibility, access domain.AccessControl) domain.Channel {
	t.Helper()
	channel := domain.NewChannel(visibility, domain.ChannelMeta{
		ID:     uuid.New(),
		Owner:  owner.Info(),
		Name:   domain.ChannelName{Local: "general", OwnerUsername: owner.Username},
		Access: access,
	})
	require.NoError(t, tm.ReadWrite(func(r repositories.Repos) error {
		return r.Channels.CreateChannel(channel)
	}))
	return channel
}

func TestInvitationService_IssueChannelInvitation(t *testing.T) {
	tm := repositories.NewMemoryTransactionManager(nil)
	clock := newFakeClock()
	svc := NewInvitationService(auth.IdentityEncryptor{}, clock.Now)

	owner := seedUser(t, tm, "alice", "hash")
	channel := seedChannel(t, tm, owner, domain.Private, domain.ReadOnly)

	t.Run("should hand the plaintext code to the owner", func(t *testing.T) {
		req := require.New(t)

		var code string
		err := tm.ReadWrite(func(r repositories.Repos) error {
			var err error
			code, err = svc.IssueChannelInvitation(r, channel.Meta().ID, owner.ID, 3, time.Hour, domain.ReadWrite)
			return err
		})
		req.NoError(err)
		req.NotEmpty(code)

		req.NoError(tm.ReadOnly(func(r repositories.Repos) error {
			inv, digest, err := r.Channels.GetChannelInvitation(channel.Meta().ID)
			req.NoError(err)
			req.Equal(auth.CodeDigest(code), digest)
			req.Equal(3, inv.MaxUses)
			req.Equal(domain.ReadWrite, inv.Access)
			return nil
		}))
	})

	t.Run("should refuse a non-owner", func(t *testing.T) {
		req := require.New(t)
		stranger := seedUser(t, tm, "mallory", "hash")

		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.IssueChannelInvitation(r, channel.Meta().ID, stranger.ID, 1, time.Hour, domain.ReadOnly)
			return err
		})
		req.ErrorIs(err, errors.ErrUnauthorized)
	})

	t.Run("should refuse a non-positive use count", func(t *testing.T) {
		req := require.New(t)

		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.IssueChannelInvitation(r, channel.Meta().ID, owner.ID, 0, time.Hour, domain.ReadOnly)
			return err
		})
		req.ErrorIs(err, errors.ErrInvalidChannelInfo)
	})

	t.Run("should refuse an unknown channel", func(t *testing.T) {
		req := require.New(t)

		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.IssueChannelInvitation(r, uuid.New(), owner.ID, 1, time.Hour, domain.ReadOnly)
			return err
		})
		req.ErrorIs(err, errors.ErrChannelNotFound)
	})

	t.Run("should never store the plaintext code", func(t *testing.T) {
		req := require.New(t)
		key := make([]byte, 32)
		encryptor, err := auth.NewAESEncryptor(key)
		req.NoError(err)
		sealed := NewInvitationService(encryptor, clock.Now)

		var code string
		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			code, err = sealed.IssueChannelInvitation(r, channel.Meta().ID, owner.ID, 1, time.Hour, domain.ReadOnly)
			return err
		}))

		req.NoError(tm.ReadOnly(func(r repositories.Repos) error {
			inv, _, err := r.Channels.GetChannelInvitation(channel.Meta().ID)
			req.NoError(err)
			req.NotEqual(code, inv.Code)

			plain, err := encryptor.Decrypt(inv.Code)
			req.NoError(err)
			req.Equal(code, plain)
			return nil
		}))
	})
}

func TestInvitationService_RedeemChannelInvitation(t *testing.T) {
	tm := repositories.NewMemoryTransactionManager(nil)
	clock := newFakeClock()
	svc := NewInvitationService(auth.IdentityEncryptor{}, clock.Now)

	owner := seedUser(t, tm, "alice", "hash")
	channel := seedChannel(t, tm, owner, domain.Private, domain.ReadOnly)

	issue := func(t *testing.T, maxUses int, ttl time.Duration, access domain.AccessControl) string {
		t.Helper()
		var code string
		require.NoError(t, tm.ReadWrite(func(r repositories.Repos) error {
			var err error
			code, err = svc.IssueChannelInvitation(r, channel.Meta().ID, owner.ID, maxUses, ttl, access)
			return err
		}))
		return code
	}

	t.Run("should admit the user with the invitation's grant", func(t *testing.T) {
		req := require.New(t)
		code := issue(t, 2, time.Hour, domain.ReadWrite)
		joiner := seedUser(t, tm, "bob", "hash")

		var membership domain.Membership
		err := tm.ReadWrite(func(r repositories.Repos) error {
			var err error
			membership, err = svc.RedeemChannelInvitation(r, code, joiner.ID)
			return err
		})
		req.NoError(err)
		req.Equal(channel.Meta().ID, membership.ChannelID)
		req.Equal(joiner.ID, membership.UserID)
		req.Equal(domain.ReadWrite, membership.Access)

		// One use consumed, the slot survives
		req.NoError(tm.ReadOnly(func(r repositories.Repos) error {
			inv, _, err := r.Channels.GetChannelInvitation(channel.Meta().ID)
			req.NoError(err)
			req.Equal(1, inv.MaxUses)
			return nil
		}))
	})

	t.Run("should delete the invitation when the last use is consumed", func(t *testing.T) {
		req := require.New(t)
		code := issue(t, 1, time.Hour, domain.ReadOnly)
		joiner := seedUser(t, tm, "carol", "hash")

		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.RedeemChannelInvitation(r, code, joiner.ID)
			return err
		}))

		// The code is gone for the next joiner
		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.RedeemChannelInvitation(r, code, uuid.New())
			return err
		})
		req.ErrorIs(err, errors.ErrInvitationCodeInvalid)
	})

	t.Run("should keep the original grant when a member redeems again", func(t *testing.T) {
		req := require.New(t)
		joiner := seedUser(t, tm, "dave", "hash")

		first := issue(t, 5, time.Hour, domain.ReadWrite)
		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.RedeemChannelInvitation(r, first, joiner.ID)
			return err
		}))

		// Reissue with a weaker grant; redeeming must not downgrade the member
		second := issue(t, 5, time.Hour, domain.ReadOnly)
		var membership domain.Membership
		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			var err error
			membership, err = svc.RedeemChannelInvitation(r, second, joiner.ID)
			return err
		}))
		req.Equal(domain.ReadWrite, membership.Access)

		// The use is still consumed
		req.NoError(tm.ReadOnly(func(r repositories.Repos) error {
			inv, _, err := r.Channels.GetChannelInvitation(channel.Meta().ID)
			req.NoError(err)
			req.Equal(4, inv.MaxUses)
			return nil
		}))
	})

	t.Run("should reject an expired invitation", func(t *testing.T) {
		req := require.New(t)
		code := issue(t, 3, time.Minute, domain.ReadOnly)
		clock.Advance(2 * time.Minute)

		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.RedeemChannelInvitation(r, code, uuid.New())
			return err
		})
		req.ErrorIs(err, errors.ErrInvitationCodeExpired)
	})

	t.Run("should reject a code that was never issued", func(t *testing.T) {
		req := require.New(t)

		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.RedeemChannelInvitation(r, "made-up", uuid.New())
			return err
		})
		req.ErrorIs(err, errors.ErrInvitationCodeInvalid)
	})
}

func TestInvitationService_UserInvitations(t *testing.T) {
	tm := repositories.NewMemoryTransactionManager(nil)
	clock := newFakeClock()
	svc := NewInvitationService(auth.IdentityEncryptor{}, clock.Now)

	inviter := seedUser(t, tm, "alice", "hash")

	t.Run("should refuse an unknown inviter", func(t *testing.T) {
		req := require.New(t)

		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.IssueUserInvitation(r, uuid.New(), time.Hour)
			return err
		})
		req.ErrorIs(err, errors.ErrUserNotFound)
	})

	t.Run("should create the account and consume the invitation together", func(t *testing.T) {
		req := require.New(t)

		var code string
		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			var err error
			code, err = svc.IssueUserInvitation(r, inviter.ID, time.Hour)
			return err
		}))

		var created domain.User
		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			var err error
			created, err = svc.RedeemUserInvitation(r, inviter.ID, code, "newcomer", "$argon2id$hash")
			return err
		}))
		req.Equal("newcomer", created.Username)

		req.NoError(tm.ReadOnly(func(r repositories.Repos) error {
			user, err := r.Users.GetUserByUsername("newcomer")
			req.NoError(err)
			req.Equal(created.ID, user.ID)
			return nil
		}))

		// Single use: the same code cannot mint a second account
		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.RedeemUserInvitation(r, inviter.ID, code, "impostor", "$argon2id$hash")
			return err
		})
		req.ErrorIs(err, errors.ErrInvitationCodeInvalid)
	})

	t.Run("should allow several outstanding invitations per inviter", func(t *testing.T) {
		req := require.New(t)

		var first, second string
		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			var err error
			if first, err = svc.IssueUserInvitation(r, inviter.ID, time.Hour); err != nil {
				return err
			}
			second, err = svc.IssueUserInvitation(r, inviter.ID, time.Hour)
			return err
		}))
		req.NotEqual(first, second)

		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			if _, err := svc.RedeemUserInvitation(r, inviter.ID, first, "guest-one", "hash"); err != nil {
				return err
			}
			_, err := svc.RedeemUserInvitation(r, inviter.ID, second, "guest-two", "hash")
			return err
		}))
	})

	t.Run("should bind the invitation to its inviter", func(t *testing.T) {
		req := require.New(t)
		other := seedUser(t, tm, "eve", "hash")

		var code string
		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			var err error
			code, err = svc.IssueUserInvitation(r, inviter.ID, time.Hour)
			return err
		}))

		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.RedeemUserInvitation(r, other.ID, code, "sneaky", "hash")
			return err
		})
		req.ErrorIs(err, errors.ErrInvitationCodeInvalid)
	})

	t.Run("should report a missing inviter as such", func(t *testing.T) {
		req := require.New(t)

		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.RedeemUserInvitation(r, uuid.New(), "whatever", "ghost", "hash")
			return err
		})
		req.ErrorIs(err, errors.ErrInviterNotFound)
	})

	t.Run("should reject an expired invitation", func(t *testing.T) {
		req := require.New(t)

		var code string
		req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
			var err error
			code, err = svc.IssueUserInvitation(r, inviter.ID, time.Minute)
			return err
		}))
		clock.Advance(2 * time.Minute)

		err := tm.ReadWrite(func(r repositories.Repos) error {
			_, err := svc.RedeemUserInvitation(r, inviter.ID, code, "latecomer", "hash")
			return err
		})
		req.ErrorIs(err, errors.ErrInvitationCodeExpired)
	})
}

// A failure later in the same unit of work must roll back both the
// membership insert and the use-counter decrement, leaving the invitation
// exactly as issued. Runs on Badger because the in-memory manager has no
// rollback.
func TestInvitationService_ChannelRedeemAtomicity(t *testing.T) {
	req := require.New(t)

	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { db.Close() })

	tm := repositories.NewBadgerTransactionManager(db, logs.GetLoggerFromLevel(slog.LevelError), nil)
	clock := newFakeClock()
	svc := NewInvitationService(auth.IdentityEncryptor{}, clock.Now)

	owner := seedUser(t, tm, "alice", "hash")
	joiner := seedUser(t, tm, "bob", "hash")
	channel := seedChannel(t, tm, owner, domain.Private, domain.ReadOnly)

	var code string
	req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
		var err error
		code, err = svc.IssueChannelInvitation(r, channel.Meta().ID, owner.ID, 2, time.Hour, domain.ReadWrite)
		return err
	}))

	boom := stderrors.New("boom")
	err = tm.ReadWrite(func(r repositories.Repos) error {
		if _, err := svc.RedeemChannelInvitation(r, code, joiner.ID); err != nil {
			return err
		}
		return boom
	})
	req.ErrorIs(err, boom)

	req.NoError(tm.ReadOnly(func(r repositories.Repos) error {
		membership, err := r.Channels.GetMembership(channel.Meta().ID, joiner.ID)
		req.NoError(err)
		req.Nil(membership)

		inv, _, err := r.Channels.GetChannelInvitation(channel.Meta().ID)
		req.NoError(err)
		req.Equal(2, inv.MaxUses)
		return nil
	}))

	// The untouched invitation still admits the joiner afterwards
	req.NoError(tm.ReadWrite(func(r repositories.Repos) error {
		_, err := svc.RedeemChannelInvitation(r, code, joiner.ID)
		return err
	}))
}
