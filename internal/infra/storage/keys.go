package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// ServiceImageKey names the object of a service picture.
func ServiceImageKey(tenantID, serviceID uint) string {
	return fmt.Sprintf("barberias/%d/servicios/%d/%s.webp", tenantID, serviceID, uuid.NewString())
}

func LogoKey(tenantID uint) string {
	return fmt.Sprintf("barberias/%d/logo/%s.webp", tenantID, uuid.NewString())
}
