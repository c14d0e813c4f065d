package model

import "time"

// Role is the flat access level attached to a user and carried as a token claim.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles. Anything else grants
// no access.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

const TokenTypeAccess = "access"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Summary strips the user down to the fields that are safe to embed in
// responses. The password hash never leaves the model layer.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// TokenBlocklistEntry records one revoked access token by its jti.
type TokenBlocklistEntry struct {
	ID        int64
	JTI       string
	TokenType string
	CreatedAt time.Time
}

// Principal is the authenticated identity derived from a bearer token.
type Principal struct {
	UserID   int64
	Username string
	Role     Role
	JTI      string
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

type LoginResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"accessToken"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	User        UserSummary `json:"user"`
}

type MeResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
