package internal

import (
	"encoding/hex"
	"fmt"
	"time"
)

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	LimitMessages     *int          `env:"LIMIT_MESSAGES"`
	TokenValidity     time.Duration `env:"TOKEN_VALIDITY"`
	InvitationTTL     time.Duration `env:"INVITATION_TTL,required=true"`
	NotifyBufferSize  int           `env:"NOTIFY_BUFFER_SIZE,required=true"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,required=true"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,required=true"`
	InvitationKeyHex  string        `env:"INVITATION_KEY,required=true"`
	AdminUsername     string        `env:"ADMIN_USERNAME"`
	AdminPassword     string        `env:"ADMIN_PASSWORD"`
	DebugHost         string        `env:"DEBUG_HOST"`
	DebugPort         int           `env:"DEBUG_PORT"`
}

// InvitationKey decodes the hex-encoded AES-256 key protecting invitation
// codes at rest.
func (c Config) InvitationKey() ([]byte, error) {
	key, err := hex.DecodeString(c.InvitationKeyHex)
	if err != nil {
		return nil, fmt.Errorf("INVITATION_KEY must be hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("INVITATION_KEY must be 32 bytes, got %d", len(key))
	}
	return key, nil
}
