package services

import (
	"time"

	"chat-hub/auth"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"

	"github.com/google/uuid"
)

// InvitationService issues, validates, and consumes channel and user
// invitations. Every method operates on the Repos of an already-open unit of
// work so redemption composes atomically with the surrounding operation
// (join, signup): a crash between the membership insert and the counter
// decrement rolls both back.
type InvitationService struct {
	encryptor auth.Encryptor
	now       func() time.Time
}

func NewInvitationService(encryptor auth.Encryptor, now func() time.Time) *InvitationService {
	return &InvitationService{encryptor: encryptor, now: now}
}

// IssueChannelInvitation fills the channel's single invitation slot,
// replacing any outstanding invitation. Only the owner may issue. The
// returned code is the plaintext handed to the issuer; the store only ever
// holds its encrypted form.
func (s *InvitationService) IssueChannelInvitation(
	r repositories.Repos,
	channelID, issuedBy uuid.UUID,
	maxUses int,
	ttl time.Duration,
	access domain.AccessControl,
) (string, error) {
	if maxUses < 1 {
		return "", errors.ErrInvalidChannelInfo
	}

	channel, err := r.Channels.GetChannelByID(channelID)
	if err != nil {
		return "", err
	}
	if channel.Meta().Owner.ID != issuedBy {
		return "", errors.ErrUnauthorized
	}

	code, err := auth.NewCode()
	if err != nil {
		return "", err
	}
	encrypted, err := s.encryptor.Encrypt(code)
	if err != nil {
		return "", err
	}

	invitation := domain.ChannelInvitation{
		ChannelID: channelID,
		Code:      encrypted,
		Access:    access,
		MaxUses:   maxUses,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := r.Channels.PutChannelInvitation(auth.CodeDigest(code), invitation); err != nil {
		return "", err
	}
	return code, nil
}

// RedeemChannelInvitation admits userID to the invitation's channel.
// Atomically within the caller's unit of work: the membership is inserted
// (a no-op when the user already joined), the use counter is decremented,
// and the invitation is deleted exactly when the counter reaches zero.
func (s *InvitationService) RedeemChannelInvitation(r repositories.Repos, code string, userID uuid.UUID) (domain.Membership, error) {
	digest := auth.CodeDigest(code)
	invitation, err := r.Channels.GetChannelInvitationByDigest(digest)
	if err != nil {
		return domain.Membership{}, err
	}
	if invitation.IsExpired(s.now()) {
		return domain.Membership{}, errors.ErrInvitationCodeExpired
	}
	if invitation.Exhausted() {
		return domain.Membership{}, errors.ErrInvitationMaxUsesReached
	}

	membership, err := r.Channels.GetMembership(invitation.ChannelID, userID)
	if err != nil {
		return domain.Membership{}, err
	}
	if membership == nil {
		membership = &domain.Membership{
			ChannelID: invitation.ChannelID,
			UserID:    userID,
			Access:    invitation.Access,
			JoinedAt:  s.now(),
		}
		if err := r.Channels.PutMembership(*membership); err != nil {
			return domain.Membership{}, err
		}
	}

	invitation.MaxUses--
	if invitation.MaxUses == 0 {
		if err := r.Channels.DeleteChannelInvitation(invitation.ChannelID); err != nil {
			return domain.Membership{}, err
		}
	} else {
		if err := r.Channels.PutChannelInvitation(digest, invitation); err != nil {
			return domain.Membership{}, err
		}
	}
	return *membership, nil
}

// IssueUserInvitation creates a single-use invitation for a brand-new
// account. An inviter may hold several outstanding invitations at once.
func (s *InvitationService) IssueUserInvitation(r repositories.Repos, inviterID uuid.UUID, ttl time.Duration) (string, error) {
	if _, err := r.Users.GetUserByID(inviterID); err != nil {
		return "", err
	}

	code, err := auth.NewCode()
	if err != nil {
		return "", err
	}
	encrypted, err := s.encryptor.Encrypt(code)
	if err != nil {
		return "", err
	}

	invitation := domain.UserInvitation{
		InviterID: inviterID,
		Code:      encrypted,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := r.Users.PutUserInvitation(auth.CodeDigest(code), invitation); err != nil {
		return "", err
	}
	return code, nil
}

// RedeemUserInvitation consumes the invitation and creates the account in
// the same unit of work, so the store can never hold a consumed invitation
// without its user or the other way round. The password arrives pre-hashed:
// complexity checks and hashing happen before any unit of work opens.
func (s *InvitationService) RedeemUserInvitation(
	r repositories.Repos,
	inviterID uuid.UUID,
	code, username, passwordHash string,
) (domain.User, error) {
	if _, err := r.Users.GetUserByID(inviterID); err != nil {
		return domain.User{}, errors.ErrInviterNotFound
	}

	digest := auth.CodeDigest(code)
	invitation, err := r.Users.GetUserInvitation(inviterID, digest)
	if err != nil {
		return domain.User{}, err
	}
	if invitation.IsExpired(s.now()) {
		return domain.User{}, errors.ErrInvitationCodeExpired
	}

	user := domain.User{ID: uuid.New(), Username: username, PasswordHash: passwordHash}
	if err := r.Users.CreateUser(user); err != nil {
		return domain.User{}, err
	}
	if err := r.Users.DeleteUserInvitation(inviterID, digest); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
