package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alliance-hq/roster/internal/model"
)

func validMember() model.MemberRequest {
	return model.MemberRequest{
		Name:  "Jane Doe",
		Email: "jane@x.com",
		Role:  "officer",
		Phone: "555-0100",
	}
}

func TestMemberValidation(t *testing.T) {
	svc := NewMemberService(newFakeMemberStore())

	tests := []struct {
		name   string
		mutate func(*model.MemberRequest)
		field  string
	}{
		{"name-too-short", func(r *model.MemberRequest) { r.Name = "J" }, "name"},
		{"name-missing", func(r *model.MemberRequest) { r.Name = "  " }, "name"},
		{"bad-email", func(r *model.MemberRequest) { r.Email = "nope" }, "email"},
		{"role-missing", func(r *model.MemberRequest) { r.Role = "" }, "role"},
		{"phone-too-long", func(r *model.MemberRequest) { r.Phone = "0123456789012345" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validMember()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), 1, req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestMemberCreateAttributesCreator(t *testing.T) {
	svc := NewMemberService(newFakeMemberStore())

	member, err := svc.Create(context.Background(), 42, validMember())
	require.NoError(t, err)
	require.Equal(t, int64(42), member.UserID)

	got, err := svc.Get(context.Background(), member.ID)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", got.Name)
}

func TestMemberNotFound(t *testing.T) {
	svc := NewMemberService(newFakeMemberStore())

	_, err := svc.Get(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), 99, validMember())
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), 99), ErrNotFound)
}

func TestMemberUpdateAndDelete(t *testing.T) {
	svc := NewMemberService(newFakeMemberStore())

	member, err := svc.Create(context.Background(), 1, validMember())
	require.NoError(t, err)

	updated := validMember()
	updated.Name = "Jane Smith"
	got, err := svc.Update(context.Background(), member.ID, updated)
	require.NoError(t, err)
	require.Equal(t, "Jane Smith", got.Name)

	require.NoError(t, svc.Delete(context.Background(), member.ID))
	_, err = svc.Get(context.Background(), member.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
