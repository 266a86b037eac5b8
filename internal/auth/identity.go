package auth

import "github.com/BruksfildServices01/barberias/internal/models"

// Identity is the authenticated staff member bound to a token.
type Identity struct {
	BarberID uint
	TenantID uint
	Name     string
	Role     string
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// CanActOn reports whether the identity may manage a resource owned by
// (tenantID, barberID). Admins cover every barber of their own tenant.
func (i Identity) CanActOn(tenantID, barberID uint) bool {
	if i.TenantID != tenantID {
		return false
	}
	return i.IsAdmin() || i.BarberID == barberID
}
