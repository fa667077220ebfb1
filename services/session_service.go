package services

import (
	stderrors "errors"
	"fmt"
	"time"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"

	"github.com/google/uuid"
)

const (
	// MaxSessions bounds the number of live tokens per user. Logging in past
	// the cap silently signs the least-recently-issued session out.
	MaxSessions = 5

	// DefaultTokenValidity applies when no override is configured.
	DefaultTokenValidity = 7 * 24 * time.Hour
)

// SessionService issues, validates and revokes session tokens, operating on
// the Repos of an already-open unit of work so counting and eviction
// serialize per user with the surrounding transaction.
type SessionService struct {
	hasher        auth.Hasher
	tokenValidity time.Duration
	now           func() time.Time
}

func NewSessionService(hasher auth.Hasher, tokenValidity time.Duration, now func() time.Time) *SessionService {
	if tokenValidity <= 0 {
		tokenValidity = DefaultTokenValidity
	}
	return &SessionService{hasher: hasher, tokenValidity: tokenValidity, now: now}
}

// Login verifies the credentials and issues a fresh token.
func (s *SessionService) Login(r repositories.Repos, username, password string) (domain.UserToken, error) {
	user, err := r.Users.GetUserByUsername(username)
	if err != nil {
		return domain.UserToken{}, err
	}

	match, err := s.hasher.Matches(user.PasswordHash, password)
	if err != nil {
		// A hasher failure means a corrupt stored hash, not bad credentials.
		return domain.UserToken{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		return domain.UserToken{}, errors.ErrPasswordInvalid
	}

	return s.IssueToken(r, user.ID)
}

// IssueToken inserts a new token for the user, evicting the oldest live one
// first whenever the cap is already reached. Expired tokens encountered
// during the count are reaped on the spot; there is no background sweeper.
func (s *SessionService) IssueToken(r repositories.Repos, userID uuid.UUID) (domain.UserToken, error) {
	now := s.now()

	tokens, err := r.Users.TokensByUser(userID)
	if err != nil {
		return domain.UserToken{}, err
	}

	live := tokens[:0]
	for _, t := range tokens {
		if t.IsExpired(now) {
			if err := r.Users.DeleteToken(t.Token); err != nil {
				return domain.UserToken{}, err
			}
			continue
		}
		live = append(live, t)
	}

	// TokensByUser returns oldest first, so eviction pops the head.
	for len(live) >= MaxSessions {
		if err := r.Users.DeleteToken(live[0].Token); err != nil {
			return domain.UserToken{}, err
		}
		live = live[1:]
	}

	opaque, err := auth.NewCode()
	if err != nil {
		return domain.UserToken{}, err
	}
	token := domain.NewUserToken(userID, opaque, now, now.Add(s.tokenValidity))
	if err := r.Users.PutToken(token); err != nil {
		return domain.UserToken{}, err
	}
	return token, nil
}

// Validate resolves a token to its user. An absent or expired token is
// simply "no session", not an error.
func (s *SessionService) Validate(r repositories.Repos, token string) (domain.User, bool, error) {
	stored, err := r.Users.GetToken(token)
	if err != nil {
		if stderrors.Is(err, errors.ErrTokenNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	if stored.IsExpired(s.now()) {
		return domain.User{}, false, nil
	}

	user, err := r.Users.GetUserByID(stored.UserID)
	if err != nil {
		return domain.User{}, false, err
	}
	return user, true, nil
}

// Logout deletes the token. Idempotent: an absent token is not an error.
// Verifying that the caller owns the token belongs to the boundary.
func (s *SessionService) Logout(r repositories.Repos, token string) error {
	return r.Users.DeleteToken(token)
}
