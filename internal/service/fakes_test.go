package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/alliance-hq/roster/internal/db"
	"github.com/alliance-hq/roster/internal/model"
)

type fakeUserStore struct {
	nextID int64
	users  map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, username, email, passwordHash string, role model.Role) (*model.User, error) {
	if _, ok := f.users[username]; ok {
		return nil, db.ErrDuplicateUsername
	}
	for _, u := range f.users {
		if u.Email == email {
			return nil, db.ErrDuplicateEmail
		}
	}
	f.nextID++
	user := &model.User{
		ID:           f.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	f.users[username] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if user, ok := f.users[username]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	for _, user := range f.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeRevocations struct {
	revoked map[string]string
}

func newFakeRevocations() *fakeRevocations {
	return &fakeRevocations{revoked: make(map[string]string)}
}

func (f *fakeRevocations) RevokeToken(ctx context.Context, jti, tokenType string) error {
	f.revoked[jti] = tokenType
	return nil
}

func (f *fakeRevocations) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	_, ok := f.revoked[jti]
	return ok, nil
}

type fakeMemberStore struct {
	nextID  int64
	members map[int64]*model.Member
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: make(map[int64]*model.Member)}
}

func (f *fakeMemberStore) InsertMember(ctx context.Context, m *model.Member) (*model.Member, error) {
	f.nextID++
	created := *m
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.members[created.ID] = &created
	return &created, nil
}

func (f *fakeMemberStore) GetMemberByID(ctx context.Context, memberID int64) (*model.Member, error) {
	if m, ok := f.members[memberID]; ok {
		return m, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeMemberStore) ListMembers(ctx context.Context) ([]model.Member, error) {
	out := make([]model.Member, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMemberStore) UpdateMember(ctx context.Context, memberID int64, m *model.Member) (*model.Member, error) {
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

func (f *fakeMemberStore) DeleteMember(ctx context.Context, memberID int64) (bool, error) {
	if _, ok := f.members[memberID]; !ok {
		return false, nil
	}
	delete(f.members, memberID)
	return true, nil
}
