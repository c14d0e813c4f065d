package service

import (
	"context"

	"github.com/alliance-hq/roster/internal/db"
	"github.com/alliance-hq/roster/internal/model"
)

type MemberStore interface {
	InsertMember(ctx context.Context, m *model.Member) (*model.Member, error)
	GetMemberByID(ctx context.Context, memberID int64) (*model.Member, error)
	ListMembers(ctx context.Context) ([]model.Member, error)
	UpdateMember(ctx context.Context, memberID int64, m *model.Member) (*model.Member, error)
	DeleteMember(ctx context.Context, memberID int64) (bool, error)
}

type MemberService struct {
	members MemberStore
}

func NewMemberService(members MemberStore) *MemberService {
	return &MemberService{members: members}
}

// Create validates the input and attributes the member to the creating user.
func (s *MemberService) Create(ctx context.Context, creatorID int64, req model.MemberRequest) (*model.Member, error) {
	if err := ValidateMember(req); err != nil {
		return nil, err
	}
	return s.members.InsertMember(ctx, &model.Member{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Phone:  req.Phone,
		UserID: creatorID,
	})
}

func (s *MemberService) Get(ctx context.Context, memberID int64) (*model.Member, error) {
	member, err := s.members.GetMemberByID(ctx, memberID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	return s.members.ListMembers(ctx)
}

func (s *MemberService) Update(ctx context.Context, memberID int64, req model.MemberRequest) (*model.Member, error) {
	if err := ValidateMember(req); err != nil {
		return nil, err
	}
	member, err := s.members.UpdateMember(ctx, memberID, &model.Member{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Phone: req.Phone,
	})
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *MemberService) Delete(ctx context.Context, memberID int64) error {
	deleted, err := s.members.DeleteMember(ctx, memberID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
