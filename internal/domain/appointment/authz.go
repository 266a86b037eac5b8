package appointment

import (
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/models"
)

// CanManage reports whether the staff identity may modify or delete ap.
func CanManage(id auth.Identity, ap *models.Appointment) bool {
	if ap == nil {
		return false
	}
	return id.CanActOn(ap.TenantID, ap.BarberID)
}
