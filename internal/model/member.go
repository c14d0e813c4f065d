package model

import "time"

// Member is one roster entry, exclusively attributed to the user that
// created it.
type Member struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	Phone     string
	CreatedAt time.Time
	UserID    int64
	Creator   UserSummary
}

type MemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

type MemberResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	Phone     string      `json:"phone,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	URL       string      `json:"url"`
	Creator   UserSummary `json:"creator"`
}

type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Count   int              `json:"count"`
}
