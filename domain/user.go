// Package domain contains core concepts of the messaging system.
// This file defines User entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"github.com/google/uuid"
)

// User is a registered account. The password hash is opaque to the domain;
// hashing and comparison are delegated to the auth layer.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}

// UserInfo is the public projection of a user, embedded wherever an entity
// references its owner or author.
type UserInfo struct {
	ID       uuid.UUID
	Username string
}

func (u User) Info() UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username}
}
