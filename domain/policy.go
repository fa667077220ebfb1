package domain

import (
	"chat-hub/errors"

	"github.com/google/uuid"
)

// Authorization decisions are pure: callers resolve the channel and the
// joining user's membership first (inside their unit of work) and pass the
// state in. A nil membership means the user never joined the channel.

// CanRead reports whether userID may read channel.
// Public channels are readable by anyone; private channels require ownership
// or membership.
func CanRead(userID uuid.UUID, channel Channel, membership *Membership) bool {
	if channel.Visibility() == Public {
		return true
	}
	if channel.Meta().Owner.ID == userID {
		return true
	}
	return membership != nil
}

// CanWrite decides whether userID may post to channel.
// Membership (or ownership) is a prerequisite. Given membership, a public
// channel applies its channel-level policy to every non-owner, while a
// private channel applies the per-member grant fixed at admission time.
func CanWrite(userID uuid.UUID, channel Channel, membership *Membership) error {
	meta := channel.Meta()
	if meta.Owner.ID == userID {
		return nil
	}
	if membership == nil {
		return errors.ErrUserNotInChannel
	}

	switch channel.Visibility() {
	case Public:
		if meta.Access == ReadWrite {
			return nil
		}
	case Private:
		if membership.Access == ReadWrite {
			return nil
		}
	}
	return errors.ErrUserDoesNotHaveAccess
}
