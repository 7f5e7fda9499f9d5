package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"nickname" validate:"required,max=50"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Nickname    string    `json:"nickname"`
}

// GuestSessionResponse carries a token for a throwaway session. Guests get the
// full diary and insight surface under a session-scoped owner key.
type GuestSessionResponse struct {
	AccessToken string    `json:"access_token"`
	GuestId     uuid.UUID `json:"guest_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}
