package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseVisibility(t *testing.T) {
	req := require.New(t)

	v, ok := ParseVisibility("public")
	req.True(ok)
	req.Equal(Public, v)

	v, ok = ParseVisibility("PRIVATE")
	req.True(ok)
	req.Equal(Private, v)

	_, ok = ParseVisibility("hidden")
	req.False(ok)
}

func TestParseAccessControl(t *testing.T) {
	req := require.New(t)

	a, ok := ParseAccessControl("read_only")
	req.True(ok)
	req.Equal(ReadOnly, a)

	a, ok = ParseAccessControl("READ_WRITE")
	req.True(ok)
	req.Equal(ReadWrite, a)

	_, ok = ParseAccessControl("ADMIN")
	req.False(ok)
}

func TestChannelName_String(t *testing.T) {
	req := require.New(t)

	name := ChannelName{Local: "general", OwnerUsername: "alice"}
	req.Equal("@alice/general", name.String())
}

func TestNewChannel(t *testing.T) {
	req := require.New(t)
	meta := ChannelMeta{ID: uuid.New(), Access: ReadWrite}

	public := NewChannel(Public, meta)
	req.Equal(Public, public.Visibility())
	req.IsType(PublicChannel{}, public)
	req.Equal(meta.ID, public.Meta().ID)

	private := NewChannel(Private, meta)
	req.Equal(Private, private.Visibility())
	req.IsType(PrivateChannel{}, private)
}
