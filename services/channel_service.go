package services

import (
	"strings"
	"time"

	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/repositories"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type IChannelService interface {
	CreateChannel(req CreateChannelRequest) (domain.Channel, error)
	IssueChannelInvitation(channelID, issuedBy uuid.UUID, maxUses int, ttl time.Duration, access domain.AccessControl) (string, error)
	JoinChannel(code string, userID uuid.UUID) (domain.Membership, error)
}

type CreateChannelRequest struct {
	OwnerID     uuid.UUID `validate:"required"`
	LocalName   string    `validate:"required,min=1,max=64,excludesall=@/ "`
	Visibility  string    `validate:"required"`
	Access      string    `validate:"required"`
	Description string    `validate:"max=512"`
	Icon        []byte
}

type ChannelService struct {
	tm          repositories.ITransactionManager
	invitations *InvitationService
	validate    *validator.Validate
	now         func() time.Time
}

func NewChannelService(tm repositories.ITransactionManager, invitations *InvitationService, now func() time.Time) IChannelService {
	return &ChannelService{tm: tm, invitations: invitations, validate: validator.New(), now: now}
}

// CreateChannel validates the request before opening a unit of work, then
// persists the channel variant matching the requested visibility. The owner
// is an implicit member and never gets a membership row.
func (s *ChannelService) CreateChannel(req CreateChannelRequest) (domain.Channel, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.ErrInvalidChannelInfo
	}
	visibility, ok := domain.ParseVisibility(req.Visibility)
	if !ok {
		return nil, errors.ErrInvalidChannelVisibility
	}
	access, ok := domain.ParseAccessControl(req.Access)
	if !ok {
		return nil, errors.ErrInvalidChannelAccessControl
	}
	if err := validateIcon(req.Icon); err != nil {
		return nil, err
	}

	var channel domain.Channel
	err := s.tm.ReadWrite(func(r repositories.Repos) error {
		owner, err := r.Users.GetUserByID(req.OwnerID)
		if err != nil {
			return err
		}
		meta := domain.ChannelMeta{
			ID:    uuid.New(),
			Owner: owner.Info(),
			Name: domain.ChannelName{
				Local:         strings.ToLower(req.LocalName),
				OwnerUsername: owner.Username,
			},
			Access:      access,
			Description: req.Description,
			Icon:        req.Icon,
		}
		channel = domain.NewChannel(visibility, meta)
		return r.Channels.CreateChannel(channel)
	})
	if err != nil {
		return nil, err
	}
	return channel, nil
}

// validateIcon accepts an absent icon or a recognized raster image.
func validateIcon(icon []byte) error {
	if len(icon) == 0 {
		return nil
	}
	kind := mimetype.Detect(icon)
	for _, allowed := range []string{"image/png", "image/jpeg", "image/gif", "image/webp"} {
		if kind.Is(allowed) {
			return nil
		}
	}
	return errors.ErrInvalidChannelInfo
}

func (s *ChannelService) IssueChannelInvitation(
	channelID, issuedBy uuid.UUID,
	maxUses int,
	ttl time.Duration,
	access domain.AccessControl,
) (string, error) {
	if _, ok := domain.ParseAccessControl(string(access)); !ok {
		return "", errors.ErrInvalidChannelAccessControl
	}

	var code string
	err := s.tm.ReadWrite(func(r repositories.Repos) error {
		var err error
		code, err = s.invitations.IssueChannelInvitation(r, channelID, issuedBy, maxUses, ttl, access)
		return err
	})
	return code, err
}

// JoinChannel redeems an invitation code for userID. Membership insert,
// counter decrement and the delete-at-zero all commit with this one unit of
// work.
func (s *ChannelService) JoinChannel(code string, userID uuid.UUID) (domain.Membership, error) {
	var membership domain.Membership
	err := s.tm.ReadWrite(func(r repositories.Repos) error {
		if _, err := r.Users.GetUserByID(userID); err != nil {
			return err
		}
		var err error
		membership, err = s.invitations.RedeemChannelInvitation(r, code, userID)
		return err
	})
	return membership, err
}
