package services

import (
	"fmt"
	"time"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/repositories"

	"github.com/google/uuid"
)

type IUserService interface {
	SignUp(inviterID uuid.UUID, code, username, password string) (domain.User, error)
	IssueUserInvitation(inviterID uuid.UUID, ttl time.Duration) (string, error)
	Login(username, password string) (domain.UserToken, error)
	Logout(token string) error
	Validate(token string) (domain.User, bool, error)
	DeleteUser(id uuid.UUID) error
}

// UserService orchestrates account and session operations. Each inbound
// operation maps to exactly one unit of work.
type UserService struct {
	tm          repositories.ITransactionManager
	invitations *InvitationService
	sessions    *SessionService
	hasher      auth.Hasher
}

func NewUserService(
	tm repositories.ITransactionManager,
	invitations *InvitationService,
	sessions *SessionService,
	hasher auth.Hasher,
) IUserService {
	return &UserService{tm: tm, invitations: invitations, sessions: sessions, hasher: hasher}
}

// SignUp redeems a user invitation into a brand-new account.
// Validation and hashing happen before the unit of work opens; the
// invitation check, the account insert and the invitation delete commit
// together.
func (s *UserService) SignUp(inviterID uuid.UUID, code, username, password string) (domain.User, error) {
	req := auth.SignUpRequest{Username: username, Password: password}

	// 1. Validate business rules (username format, password complexity)
	// We check this before any expensive cryptographic operation.
	if err := auth.ValidateSignUp(req); err != nil {
		return domain.User{}, err
	}

	// 2. Hash the password using Argon2id
	// Done in the service layer to keep the repository unaware of plain passwords.
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Consume the invitation and persist the user atomically
	var user domain.User
	err = s.tm.ReadWrite(func(r repositories.Repos) error {
		user, err = s.invitations.RedeemUserInvitation(r, inviterID, code, username, hashed)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) IssueUserInvitation(inviterID uuid.UUID, ttl time.Duration) (string, error) {
	var code string
	err := s.tm.ReadWrite(func(r repositories.Repos) error {
		var err error
		code, err = s.invitations.IssueUserInvitation(r, inviterID, ttl)
		return err
	})
	return code, err
}

func (s *UserService) Login(username, password string) (domain.UserToken, error) {
	var token domain.UserToken
	err := s.tm.ReadWrite(func(r repositories.Repos) error {
		var err error
		token, err = s.sessions.Login(r, username, password)
		return err
	})
	return token, err
}

func (s *UserService) Logout(token string) error {
	return s.tm.ReadWrite(func(r repositories.Repos) error {
		return s.sessions.Logout(r, token)
	})
}

func (s *UserService) Validate(token string) (domain.User, bool, error) {
	var (
		user domain.User
		ok   bool
	)
	err := s.tm.ReadOnly(func(r repositories.Repos) error {
		var err error
		user, ok, err = s.sessions.Validate(r, token)
		return err
	})
	return user, ok, err
}

// DeleteUser removes the account and everything it owns: tokens, outstanding
// invitations and channel memberships, all in one unit of work.
func (s *UserService) DeleteUser(id uuid.UUID) error {
	return s.tm.ReadWrite(func(r repositories.Repos) error {
		if err := r.Channels.DeleteMembershipsForUser(id); err != nil {
			return err
		}
		return r.Users.DeleteUser(id)
	})
}
