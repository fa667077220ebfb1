//go:generate go run go.uber.org/mock/mockgen -source=transaction.go -destination=../mocks/mock_repositories.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"chat-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Repos bundles the repository handles bound to one unit of work. Every call
// made through a Repos observes a single consistent snapshot; all writes
// commit together when the unit of work returns nil.
type Repos struct {
	Users    IUserRepository
	Channels IChannelRepository
	Messages IMessageRepository
}

// ITransactionManager runs units of work. ReadWrite commits all writes when
// fn returns nil and rolls back every write when it returns an error.
// ReadOnly rejects writes and never commits anything.
//
// A unit of work must not start another one: the handles in Repos are only
// valid until fn returns, and nesting ReadWrite calls is undefined.
type ITransactionManager interface {
	ReadWrite(fn func(r Repos) error) error
	ReadOnly(fn func(r Repos) error) error
}

// IUserRepository persists users plus the entities owned by a user:
// user invitations and session tokens. Invitation codes are handed over
// already encrypted; lookups use the deterministic code digest.
type IUserRepository interface {
	CreateUser(user domain.User) error
	GetUserByID(id uuid.UUID) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
	// DeleteUser removes the user, its username index, its tokens and its
	// outstanding user invitations. Channel memberships are cascaded by the
	// channel repository within the same unit of work.
	DeleteUser(id uuid.UUID) error

	PutUserInvitation(digest string, inv domain.UserInvitation) error
	GetUserInvitation(inviterID uuid.UUID, digest string) (domain.UserInvitation, error)
	DeleteUserInvitation(inviterID uuid.UUID, digest string) error

	PutToken(token domain.UserToken) error
	GetToken(token string) (domain.UserToken, error)
	// DeleteToken is idempotent: removing an absent token is not an error.
	DeleteToken(token string) error
	// TokensByUser returns the user's tokens ordered by creation time,
	// oldest first, ties broken by token bytes.
	TokensByUser(userID uuid.UUID) ([]domain.UserToken, error)
}

// IChannelRepository persists channels, memberships and the single
// outstanding invitation slot per channel.
type IChannelRepository interface {
	CreateChannel(channel domain.Channel) error
	GetChannelByID(id uuid.UUID) (domain.Channel, error)
	GetChannelByName(name domain.ChannelName) (domain.Channel, error)

	PutMembership(m domain.Membership) error
	// GetMembership returns nil without error when the user never joined.
	GetMembership(channelID, userID uuid.UUID) (*domain.Membership, error)
	DeleteMembershipsForUser(userID uuid.UUID) error

	// PutChannelInvitation fills the channel's invitation slot, replacing
	// any previous invitation for that channel.
	PutChannelInvitation(digest string, inv domain.ChannelInvitation) error
	GetChannelInvitation(channelID uuid.UUID) (domain.ChannelInvitation, string, error)
	GetChannelInvitationByDigest(digest string) (domain.ChannelInvitation, error)
	DeleteChannelInvitation(channelID uuid.UUID) error
}

// IMessageRepository appends messages and pages through channel history.
type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessages(channelID uuid.UUID, cursor *string) ([]domain.Message, *string, error)
}

// BadgerTransactionManager maps one unit of work onto one Badger
// transaction. Badger's SSI conflict detection serializes concurrent
// read-modify-write sequences on the same keys (invitation counters, token
// eviction); a conflict surfaces as an error and is never retried here,
// since retrying a partially applied decrement could double-consume an
// invitation.
type BadgerTransactionManager struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewBadgerTransactionManager(db *badger.DB, log *slog.Logger, limitMessages *int) *BadgerTransactionManager {
	return &BadgerTransactionManager{db: db, log: log, limitMessages: limitMessages}
}

func (m *BadgerTransactionManager) repos(txn *badger.Txn) Repos {
	return Repos{
		Users:    badgerUserRepository{txn: txn},
		Channels: badgerChannelRepository{txn: txn},
		Messages: badgerMessageRepository{txn: txn, log: m.log, limit: m.limitMessages},
	}
}

func (m *BadgerTransactionManager) ReadWrite(fn func(r Repos) error) error {
	err := m.db.Update(func(txn *badger.Txn) error {
		return fn(m.repos(txn))
	})
	if err == nil {
		return nil
	}
	if isDomainErr(err) {
		return err
	}
	return fmt.Errorf("unit of work failed: %w", err)
}

func (m *BadgerTransactionManager) ReadOnly(fn func(r Repos) error) error {
	err := m.db.View(func(txn *badger.Txn) error {
		return fn(m.repos(txn))
	})
	if err == nil {
		return nil
	}
	if isDomainErr(err) {
		return err
	}
	return fmt.Errorf("unit of work failed: %w", err)
}
