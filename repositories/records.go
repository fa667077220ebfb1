package repositories

import (
	stderrors "errors"
	"fmt"
	"time"

	"chat-hub/domain"
	"chat-hub/errors"

	"github.com/google/uuid"
)

// Key schema. Padded timestamps keep lexicographic order aligned with
// chronological order, the same trick the message keys rely on for paging.
//
//	user:id:{uuid}                     -> userRecord
//	user:name:{username}               -> uuid string
//	uinv:{inviter}:{digest}            -> userInvitationRecord
//	token:{token}                      -> tokenRecord
//	tokenidx:{user}:{created:%019d}:{token} -> ""
//	chan:id:{uuid}                     -> channelRecord
//	chan:name:@{owner}/{local}         -> uuid string
//	member:{chan}:{user}               -> membershipRecord
//	cinv:chan:{chan}                   -> channelInvitationRecord
//	cinv:code:{digest}                 -> channel uuid string
//	msg:{chan}:{at:%019d}:{uuid}       -> messageRecord
func userKey(id uuid.UUID) []byte          { return []byte("user:id:" + id.String()) }
func usernameKey(name string) []byte       { return []byte("user:name:" + name) }
func userInvitationKey(inviter uuid.UUID, digest string) []byte {
	return []byte(fmt.Sprintf("uinv:%s:%s", inviter, digest))
}
func userInvitationPrefix(inviter uuid.UUID) []byte {
	return []byte(fmt.Sprintf("uinv:%s:", inviter))
}
func tokenKey(token string) []byte { return []byte("token:" + token) }
func tokenIndexKey(userID uuid.UUID, createdAt time.Time, token string) []byte {
	return []byte(fmt.Sprintf("tokenidx:%s:%019d:%s", userID, createdAt.UnixNano(), token))
}
func tokenIndexPrefix(userID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("tokenidx:%s:", userID))
}
func channelKey(id uuid.UUID) []byte { return []byte("chan:id:" + id.String()) }
func channelNameKey(name domain.ChannelName) []byte {
	return []byte("chan:name:" + name.String())
}
func membershipKey(channelID, userID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("member:%s:%s", channelID, userID))
}
func membershipPrefix() []byte { return []byte("member:") }
func channelInvitationKey(channelID uuid.UUID) []byte {
	return []byte("cinv:chan:" + channelID.String())
}
func invitationCodeKey(digest string) []byte { return []byte("cinv:code:" + digest) }
func messageKey(channelID uuid.UUID, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", channelID, at.UnixNano(), id))
}
func messagePrefix(channelID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:", channelID))
}

type userRecord struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
}

func (r userRecord) toDomain() domain.User {
	return domain.User{ID: r.ID, Username: r.Username, PasswordHash: r.PasswordHash}
}

type userInvitationRecord struct {
	InviterID uuid.UUID `json:"inviter_id"`
	Code      string    `json:"code"` // encrypted at rest
	ExpiresAt time.Time `json:"expires_at"`
}

type tokenRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (r tokenRecord) toDomain() domain.UserToken {
	return domain.UserToken{UserID: r.UserID, Token: r.Token, CreatedAt: r.CreatedAt, ExpiresAt: r.ExpiresAt}
}

type channelRecord struct {
	ID          uuid.UUID            `json:"id"`
	OwnerID     uuid.UUID            `json:"owner_id"`
	OwnerName   string               `json:"owner_name"`
	LocalName   string               `json:"local_name"`
	Visibility  domain.Visibility    `json:"visibility"`
	Access      domain.AccessControl `json:"access"`
	Description string               `json:"description,omitempty"`
	Icon        []byte               `json:"icon,omitempty"`
}

func fromChannel(c domain.Channel) channelRecord {
	meta := c.Meta()
	return channelRecord{
		ID:          meta.ID,
		OwnerID:     meta.Owner.ID,
		OwnerName:   meta.Owner.Username,
		LocalName:   meta.Name.Local,
		Visibility:  c.Visibility(),
		Access:      meta.Access,
		Description: meta.Description,
		Icon:        meta.Icon,
	}
}

func (r channelRecord) toDomain() domain.Channel {
	meta := domain.ChannelMeta{
		ID:          r.ID,
		Owner:       domain.UserInfo{ID: r.OwnerID, Username: r.OwnerName},
		Name:        domain.ChannelName{Local: r.LocalName, OwnerUsername: r.OwnerName},
		Access:      r.Access,
		Description: r.Description,
		Icon:        r.Icon,
	}
	return domain.NewChannel(r.Visibility, meta)
}

type membershipRecord struct {
	ChannelID uuid.UUID            `json:"channel_id"`
	UserID    uuid.UUID            `json:"user_id"`
	Access    domain.AccessControl `json:"access"`
	JoinedAt  time.Time            `json:"joined_at"`
}

func (r membershipRecord) toDomain() domain.Membership {
	return domain.Membership{ChannelID: r.ChannelID, UserID: r.UserID, Access: r.Access, JoinedAt: r.JoinedAt}
}

type channelInvitationRecord struct {
	ChannelID uuid.UUID            `json:"channel_id"`
	Code      string               `json:"code"` // encrypted at rest
	Digest    string               `json:"digest"`
	Access    domain.AccessControl `json:"access"`
	MaxUses   int                  `json:"max_uses"`
	ExpiresAt time.Time            `json:"expires_at"`
}

func (r channelInvitationRecord) toDomain() domain.ChannelInvitation {
	return domain.ChannelInvitation{
		ChannelID: r.ChannelID,
		Code:      r.Code,
		Access:    r.Access,
		MaxUses:   r.MaxUses,
		ExpiresAt: r.ExpiresAt,
	}
}

type messageRecord struct {
	ID         uuid.UUID `json:"id"`
	ChannelID  uuid.UUID `json:"channel_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r messageRecord) toDomain() domain.Message {
	return domain.Message{
		ID:        r.ID,
		ChannelID: r.ChannelID,
		Author:    domain.UserInfo{ID: r.AuthorID, Username: r.AuthorName},
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

// isDomainErr separates recoverable rule violations from infrastructure
// failures so the transaction manager only wraps the latter.
func isDomainErr(err error) bool {
	for _, sentinel := range []error{
		errors.ErrUserNotFound, errors.ErrUserAlreadyExists, errors.ErrInvalidUserInfo,
		errors.ErrInviterNotFound, errors.ErrInvitationCodeInvalid, errors.ErrInvitationCodeExpired,
		errors.ErrInvitationMaxUsesReached, errors.ErrPasswordInvalid,
		errors.ErrChannelNotFound, errors.ErrInvalidChannelInfo, errors.ErrInvalidChannelVisibility,
		errors.ErrInvalidChannelAccessControl, errors.ErrUnableToCreateChannel,
		errors.ErrInvalidMessageInfo, errors.ErrMessageNotFound,
		errors.ErrUserNotInChannel, errors.ErrUserDoesNotHaveAccess,
		errors.ErrUnauthorized,
	} {
		if stderrors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
