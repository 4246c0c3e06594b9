package model

import "time"

// User represents a user record in the database. PasswordHash holds the
// bcrypt hash from the moment of creation — plaintext is never stored.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest represents a registration request body. The password rule
// is a custom validation: at least 8 characters with an upper-case letter, a
// lower-case letter and a digit.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

// LoginRequest represents a login request body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyBotRequest carries the client-side captcha challenge token.
type VerifyBotRequest struct {
	Token string `json:"token"`
}

// AuthResponse is returned by register and login: the session token plus the
// safe user projection. The same token is also set as a cookie.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UserResponse is the user data safe for API responses. The password hash
// deliberately has no place here.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
