package auth

import "github.com/soulsyync/soulsyync-api/internal/models"

// Principal is the resolved identity behind a request. The zero value
// is the anonymous principal. Core operations take a Principal
// explicitly instead of reading ambient session state.
type Principal struct {
	ID   uint
	Role models.Role
}

func Anonymous() Principal {
	return Principal{}
}

func (p Principal) Authenticated() bool {
	return p.ID != 0
}

func (p Principal) IsAdmin() bool {
	return p.Authenticated() && p.Role == models.RoleAdmin
}

// CanAccess reports whether the principal may read or mutate a record
// owned by ownerID: the owner themselves, or any admin.
func (p Principal) CanAccess(ownerID uint) bool {
	return p.IsAdmin() || (p.Authenticated() && p.ID == ownerID)
}
