package models

import "time"

// RiderAccount represents a registered rider keyed by normalized email
type RiderAccount struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Username     string    `json:"username,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RiderSession represents a signed-in rider. At most one session per storage
// namespace is persisted as the current session pointer; the rest live only in
// memory until the process exits.
type RiderSession struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Token     string `json:"token,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}

// SignUpRequest is the rider registration payload
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the rider sign-in payload
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
