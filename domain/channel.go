package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Visibility string

const (
	Public  Visibility = "PUBLIC"
	Private Visibility = "PRIVATE"
)

// ParseVisibility maps an inbound string onto a Visibility.
func ParseVisibility(s string) (Visibility, bool) {
	switch Visibility(strings.ToUpper(s)) {
	case Public:
		return Public, true
	case Private:
		return Private, true
	}
	return "", false
}

// AccessControl governs whether a non-owner may post.
type AccessControl string

const (
	ReadOnly  AccessControl = "READ_ONLY"
	ReadWrite AccessControl = "READ_WRITE"
)

func ParseAccessControl(s string) (AccessControl, bool) {
	switch AccessControl(strings.ToUpper(s)) {
	case ReadOnly:
		return ReadOnly, true
	case ReadWrite:
		return ReadWrite, true
	}
	return "", false
}

// ChannelName is the owner-qualified identity of a channel.
// The full form "@owner/local" is globally unique.
type ChannelName struct {
	Local         string
	OwnerUsername string
}

func (n ChannelName) String() string {
	return fmt.Sprintf("@%s/%s", n.OwnerUsername, n.Local)
}

// ChannelMeta carries the fields shared by both channel variants.
// Access is the channel-level default policy: it governs every non-owner on
// a public channel, while private channels rely on per-member grants instead.
type ChannelMeta struct {
	ID          uuid.UUID
	Owner       UserInfo
	Name        ChannelName
	Access      AccessControl
	Description string
	Icon        []byte
}

// Channel is a tagged union over the two visibility variants.
// Visibility is fixed at construction; there is no mutable visibility field.
type Channel interface {
	Meta() ChannelMeta
	Visibility() Visibility
}

type PublicChannel struct {
	ChannelMeta
}

func (c PublicChannel) Meta() ChannelMeta     { return c.ChannelMeta }
func (c PublicChannel) Visibility() Visibility { return Public }

type PrivateChannel struct {
	ChannelMeta
}

func (c PrivateChannel) Meta() ChannelMeta     { return c.ChannelMeta }
func (c PrivateChannel) Visibility() Visibility { return Private }

// NewChannel builds the variant matching the requested visibility.
func NewChannel(visibility Visibility, meta ChannelMeta) Channel {
	if visibility == Private {
		return PrivateChannel{ChannelMeta: meta}
	}
	return PublicChannel{ChannelMeta: meta}
}

// Membership grants a user access to a channel they explicitly joined.
// The owner is authorized implicitly and never has a Membership row.
type Membership struct {
	ChannelID uuid.UUID
	UserID    uuid.UUID
	Access    AccessControl
	JoinedAt  time.Time
}
