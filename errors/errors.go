package errors

import "errors"

// User failures.
var (
	ErrUserNotFound             = errors.New("user not found")
	ErrUserAlreadyExists        = errors.New("user already exists")
	ErrInvalidUserInfo          = errors.New("invalid user info")
	ErrInviterNotFound          = errors.New("inviter not found")
	ErrInvitationCodeInvalid    = errors.New("invitation code is invalid")
	ErrInvitationCodeExpired    = errors.New("invitation code has expired")
	ErrInvitationMaxUsesReached = errors.New("invitation code max uses reached")
	ErrPasswordInvalid          = errors.New("password is invalid")
	ErrTokenNotFound            = errors.New("token not found")
)

// Channel failures.
var (
	ErrChannelNotFound             = errors.New("channel not found")
	ErrInvalidChannelInfo          = errors.New("invalid channel info")
	ErrInvalidChannelVisibility    = errors.New("invalid channel visibility")
	ErrInvalidChannelAccessControl = errors.New("invalid channel access control")
	ErrUnableToCreateChannel       = errors.New("unable to create channel")
)

// Message failures.
var (
	ErrInvalidMessageInfo    = errors.New("invalid message info")
	ErrMessageNotFound       = errors.New("message not found")
	ErrUserNotInChannel      = errors.New("user not in channel")
	ErrUserDoesNotHaveAccess = errors.New("user does not have access")
)

// Infrastructure failures.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrWorkerPanic  = errors.New("worker panic")
)
