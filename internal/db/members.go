package db

import (
	"context"

	"github.com/alliance-hq/roster/internal/model"
)

func (db *Postgres) InsertMember(ctx context.Context, m *model.Member) (*model.Member, error) {
	query := `
		INSERT INTO members (name, email, role, phone, created_at, user_id)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING id
	`
	var id int64
	if err := db.Pool.QueryRow(ctx, query, m.Name, m.Email, m.Role, nullable(m.Phone), m.UserID).Scan(&id); err != nil {
		return nil, err
	}
	return db.GetMemberByID(ctx, id)
}

func (db *Postgres) GetMemberByID(ctx context.Context, memberID int64) (*model.Member, error) {
	query := `
		SELECT m.id, m.name, m.email, m.role, COALESCE(m.phone, ''), m.created_at, m.user_id,
		       u.id, u.username, u.role
		FROM members m
		JOIN users u ON u.id = m.user_id
		WHERE m.id = $1
	`
	var member model.Member
	err := db.Pool.QueryRow(ctx, query, memberID).Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.Role,
		&member.Phone,
		&member.CreatedAt,
		&member.UserID,
		&member.Creator.ID,
		&member.Creator.Username,
		&member.Creator.Role,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (db *Postgres) ListMembers(ctx context.Context) ([]model.Member, error) {
	query := `
		SELECT m.id, m.name, m.email, m.role, COALESCE(m.phone, ''), m.created_at, m.user_id,
		       u.id, u.username, u.role
		FROM members m
		JOIN users u ON u.id = m.user_id
		ORDER BY m.id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]model.Member, 0)
	for rows.Next() {
		var member model.Member
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Email,
			&member.Role,
			&member.Phone,
			&member.CreatedAt,
			&member.UserID,
			&member.Creator.ID,
			&member.Creator.Username,
			&member.Creator.Role,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (db *Postgres) UpdateMember(ctx context.Context, memberID int64, m *model.Member) (*model.Member, error) {
	query := `
		UPDATE members
		SET name = $2, email = $3, role = $4, phone = $5
		WHERE id = $1
		RETURNING id
	`
	var id int64
	if err := db.Pool.QueryRow(ctx, query, memberID, m.Name, m.Email, m.Role, nullable(m.Phone)).Scan(&id); err != nil {
		return nil, err
	}
	return db.GetMemberByID(ctx, id)
}

func (db *Postgres) DeleteMember(ctx context.Context, memberID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, memberID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
