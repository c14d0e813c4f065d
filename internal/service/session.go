package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alliance-hq/roster/internal/config"
	"github.com/alliance-hq/roster/internal/db"
	"github.com/alliance-hq/roster/internal/model"
)

const sessionCookieName = "alliance_session"

type CookieConfig struct {
	Name     string
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

// SessionService is the web-flow counterpart of the bearer-token validator:
// a signed cookie referencing a user id. It is signed with its own secret
// and deliberately never consults the token blocklist. Web sessions and
// bearer tokens are independent credential mechanisms with independent
// invalidation: logging out of one does not revoke the other.
type SessionService struct {
	users     UserStore
	secret    []byte
	ttl       time.Duration
	cookieCfg CookieConfig
}

func NewSessionService(users UserStore, cfg config.SessionConfig) (*SessionService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: SECRET_KEY is required", ErrMisconfigured)
	}

	ttl, err := time.ParseDuration(cfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid SESSION_TTL", ErrMisconfigured)
	}

	cookieSecure, err := parseBool(cfg.CookieSecure, true)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid SESSION_COOKIE_SECURE", ErrMisconfigured)
	}

	cookieSameSite, err := parseSameSite(cfg.CookieSameSite)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid SESSION_COOKIE_SAMESITE", ErrMisconfigured)
	}

	if cookieSameSite == http.SameSiteNoneMode && !cookieSecure {
		return nil, fmt.Errorf("%w: SameSite=None requires Secure cookie", ErrMisconfigured)
	}

	cookiePath := cfg.CookiePath
	if strings.TrimSpace(cookiePath) == "" {
		cookiePath = "/"
	}

	return &SessionService{
		users:  users,
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		cookieCfg: CookieConfig{
			Name:     sessionCookieName,
			Path:     cookiePath,
			Domain:   cfg.CookieDomain,
			Secure:   cookieSecure,
			SameSite: cookieSameSite,
			MaxAge:   int(ttl.Seconds()),
		},
	}, nil
}

func (s *SessionService) CookieConfig() CookieConfig {
	return s.cookieCfg
}

// Establish mints the signed cookie value referencing the user.
func (s *SessionService) Establish(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// CurrentUser resolves the cookie value to the user it references, or
// ErrUnauthenticated for anything unverifiable. The session is a weak
// reference: the user row is looked up fresh on every call.
func (s *SessionService) CurrentUser(ctx context.Context, cookieValue string) (*model.User, error) {
	if strings.TrimSpace(cookieValue) == "" {
		return nil, ErrUnauthenticated
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(cookieValue, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthenticated
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func parseBool(value string, fallback bool) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseBool(value)
}

func parseSameSite(value string) (http.SameSite, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("unknown SameSite value %q", value)
	}
}
