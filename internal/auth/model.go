package auth

import (
	"time"

	"nxorax_backend/internal/domain"
)

// SignupRequest carries the fields collected on the registration form.
type SignupRequest struct {
	FullName string `json:"fullName" binding:"required,max=120"`
	Username string `json:"username" binding:"required,max=60"`
	Whatsapp string `json:"whatsapp" binding:"omitempty,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest identifies a user by username, not email. The email backing
// the credentials is looked up from the profile document.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the session token pair handed back to the client.
type TokenResponse struct {
	IDToken      string    `json:"idToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// SessionResponse is returned from both signup and login.
type SessionResponse struct {
	User  *domain.Profile `json:"user"`
	Token TokenResponse   `json:"token"`
}
