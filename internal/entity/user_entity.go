package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleGuest UserRole = "guest"

	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	Nickname     string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsGuest reports whether the user is a throwaway session with no durable
// account. Guests get the full diary and insight surface; their data simply
// lives under the session-scoped owner key.
func (u *User) IsGuest() bool {
	return u.Role == UserRoleGuest
}
