package handler

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/alliance-hq/roster/internal/config"
	"github.com/alliance-hq/roster/internal/db"
	"github.com/alliance-hq/roster/internal/model"
	"github.com/alliance-hq/roster/internal/service"
)

type fakeStore struct {
	nextUserID   int64
	users        map[string]*model.User
	revoked      map[string]string
	nextMemberID int64
	members      map[int64]*model.Member
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[string]*model.User),
		revoked: make(map[string]string),
		members: make(map[int64]*model.Member),
	}
}

func (f *fakeStore) CreateUser(ctx context.Context, username, email, passwordHash string, role model.Role) (*model.User, error) {
	if _, ok := f.users[username]; ok {
		return nil, db.ErrDuplicateUsername
	}
	for _, u := range f.users {
		if u.Email == email {
			return nil, db.ErrDuplicateEmail
		}
	}
	f.nextUserID++
	user := &model.User{
		ID:           f.nextUserID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	f.users[username] = user
	return user, nil
}

func (f *fakeStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if user, ok := f.users[username]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStore) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	for _, user := range f.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStore) RevokeToken(ctx context.Context, jti, tokenType string) error {
	f.revoked[jti] = tokenType
	return nil
}

func (f *fakeStore) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	_, ok := f.revoked[jti]
	return ok, nil
}

func (f *fakeStore) InsertMember(ctx context.Context, m *model.Member) (*model.Member, error) {
	f.nextMemberID++
	created := *m
	created.ID = f.nextMemberID
	created.CreatedAt = time.Now()
	for _, u := range f.users {
		if u.ID == m.UserID {
			created.Creator = u.Summary()
		}
	}
	f.members[created.ID] = &created
	return &created, nil
}

func (f *fakeStore) GetMemberByID(ctx context.Context, memberID int64) (*model.Member, error) {
	if m, ok := f.members[memberID]; ok {
		return m, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStore) ListMembers(ctx context.Context) ([]model.Member, error) {
	out := make([]model.Member, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeStore) UpdateMember(ctx context.Context, memberID int64, m *model.Member) (*model.Member, error) {
	existing, ok := f.members[memberID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	existing.Name = m.Name
	existing.Email = m.Email
	existing.Role = m.Role
	existing.Phone = m.Phone
	return existing, nil
}

func (f *fakeStore) DeleteMember(ctx context.Context, memberID int64) (bool, error) {
	if _, ok := f.members[memberID]; !ok {
		return false, nil
	}
	delete(f.members, memberID)
	return true, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	auth, err := service.NewAuthService(store, store, config.AuthConfig{
		JWTSecret: "test-jwt-secret",
		AccessTTL: "2h",
	})
	require.NoError(t, err)

	sessions, err := service.NewSessionService(store, config.SessionConfig{
		Secret:       "test-session-secret",
		TTL:          "24h",
		CookieSecure: "false",
	})
	require.NoError(t, err)

	members := service.NewMemberService(store)

	router := NewRouter(zerolog.Nop(), auth, sessions, members, config.ServerConfig{
		TemplateGlob: "../../web/templates/*.html",
	}, "Alliance Management System")
	return router, store
}
