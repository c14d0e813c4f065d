package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alliance-hq/roster/internal/config"
	"github.com/alliance-hq/roster/internal/db"
	"github.com/alliance-hq/roster/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrMisconfigured      = errors.New("auth config invalid")
)

type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string, role model.Role) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
}

// RevocationRegistry records explicitly invalidated token ids. Entries are
// never removed; expiry checking already rejects tokens past their lifetime.
type RevocationRegistry interface {
	RevokeToken(ctx context.Context, jti, tokenType string) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthService struct {
	users     UserStore
	revoked   RevocationRegistry
	jwtSecret []byte
	accessTTL time.Duration
}

type accessClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type IssuedToken struct {
	Token     string
	JTI       string
	ExpiresAt time.Time
}

func NewAuthService(users UserStore, revoked RevocationRegistry, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET_KEY is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	return &AuthService{
		users:     users,
		revoked:   revoked,
		jwtSecret: []byte(cfg.JWTSecret),
		accessTTL: accessTTL,
	}, nil
}

func (s *AuthService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. A
// malformed hash is a verification failure, never a panic.
func (s *AuthService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if err := ValidateRegistration(req); err != nil {
		return nil, err
	}

	role := model.Role(req.Role)
	if req.Role == "" {
		role = model.RoleUser
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.users.CreateUser(ctx, req.Username, req.Email, hash, role)
}

// Authenticate verifies credentials. A missing user and a wrong password
// produce the same error so usernames cannot be enumerated.
func (s *AuthService) Authenticate(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	if err := ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login verifies credentials and mints an access token for the API flow.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, *IssuedToken, error) {
	user, err := s.Authenticate(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, nil, err
	}
	return user, token, nil
}

func (s *AuthService) IssueToken(user *model.User) (*IssuedToken, error) {
	now := time.Now()
	jti := uuid.NewString()
	claims := accessClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &IssuedToken{
		Token:     signed,
		JTI:       jti,
		ExpiresAt: now.Add(s.accessTTL),
	}, nil
}

// ValidateToken checks, in order: structure and signature, expiry, then the
// revocation registry. The registry lookup is the only I/O.
func (s *AuthService) ValidateToken(ctx context.Context, raw string) (*model.Principal, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrUnauthenticated
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid || claims.ID == "" {
		return nil, ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	revoked, err := s.revoked.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return &model.Principal{
		UserID:   userID,
		Username: claims.Username,
		Role:     model.Role(claims.Role),
		JTI:      claims.ID,
	}, nil
}

// Logout revokes the presented token's jti. Idempotent: revoking an already
// revoked token still succeeds.
func (s *AuthService) Logout(ctx context.Context, principal *model.Principal) error {
	if principal == nil {
		return ErrUnauthenticated
	}
	return s.revoked.RevokeToken(ctx, principal.JTI, model.TokenTypeAccess)
}
