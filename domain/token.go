package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserToken is one concurrent session credential for a user.
// Tokens are opaque; the session service bounds how many may be live at once.
type UserToken struct {
	UserID    uuid.UUID
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewUserToken builds a token whose expiry is strictly after its creation.
// A non-positive lifetime is a caller bug, not a recoverable condition.
func NewUserToken(userID uuid.UUID, token string, createdAt, expiresAt time.Time) UserToken {
	if !expiresAt.After(createdAt) {
		panic(fmt.Sprintf("user token expiry %v not after creation %v", expiresAt, createdAt))
	}
	return UserToken{UserID: userID, Token: token, CreatedAt: createdAt, ExpiresAt: expiresAt}
}

func (t UserToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
