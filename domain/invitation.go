package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChannelInvitation admits users to a channel. A channel holds at most one
// outstanding invitation; issuing a new one replaces the previous slot.
// MaxUses only ever decreases, and the record is deleted once it hits zero.
type ChannelInvitation struct {
	ChannelID uuid.UUID
	Code      string
	Access    AccessControl
	MaxUses   int
	ExpiresAt time.Time
}

func (i ChannelInvitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

func (i ChannelInvitation) Exhausted() bool {
	return i.MaxUses == 0
}

// UserInvitation admits a brand-new account. Always single-use; one inviter
// may hold several outstanding invitations at once, keyed by (inviter, code).
type UserInvitation struct {
	InviterID uuid.UUID
	Code      string
	ExpiresAt time.Time
}

func (i UserInvitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
