package auth

import "github.com/hongminglow/jobtracker-be/internal/apperr"

// CheckOwner fails with apperr.ErrNotOwner unless id owns the resource.
// Must run before every mutation of an owned resource.
func CheckOwner(id Identity, ownerID string) error {
	if id.UserID == "" || id.UserID != ownerID {
		return apperr.ErrNotOwner
	}
	return nil
}
