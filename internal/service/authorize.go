package service

import "github.com/alliance-hq/roster/internal/model"

// Authorize decides whether a principal may perform an operation requiring
// the given role. Stateless; fails closed on an absent principal, an
// unrecognized principal role, or an unrecognized required role.
func Authorize(principal *model.Principal, required model.Role) error {
	if principal == nil {
		return ErrUnauthenticated
	}
	if !principal.Role.Valid() {
		return ErrForbidden
	}

	switch required {
	case model.RoleUser:
		return nil
	case model.RoleAdmin:
		if principal.Role == model.RoleAdmin {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}
