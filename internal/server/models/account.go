// Package models contains the server-side persistence models.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Account roles.
const (
	RoleJunior = "junior"
	RoleMentor = "mentor"
	RoleAdmin  = "admin"
)

// Account is a registered user. PasswordHash is empty for accounts
// created through Google OAuth.
type Account struct {
	CreatedAt    time.Time
	Email        string
	PasswordHash string
	Name         string
	Age          string
	College      string
	Stream       string
	Role         string
	Avatar       string
	GoogleID     string
	ID           uuid.UUID
}
