package dto

import (
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/timeofday"
)

// AppointmentListDTO is what staff see: the booking plus the barber name.
type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	BarberID    uint   `json:"barbero_id"`
	BarberName  string `json:"barbero"`
	Date        string `json:"fecha"`
	Time        string `json:"hora"`
	TimeDisplay string `json:"hora_display"`
	FirstName   string `json:"nombre"`
	LastName    string `json:"apellido"`
	Phone       string `json:"telefono"`
	Service     string `json:"servicio"`
}

// PublicAppointmentDTO hides client details from unauthenticated callers.
type PublicAppointmentDTO struct {
	ID          uint   `json:"id"`
	BarberID    uint   `json:"barbero_id"`
	BarberName  string `json:"barbero"`
	Date        string `json:"fecha"`
	Time        string `json:"hora"`
	TimeDisplay string `json:"hora_display"`
}

func display(t string) string {
	if d, err := timeofday.To12h(t); err == nil {
		return d
	}
	return t
}

func NewAppointmentList(list []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(list))
	for _, ap := range list {
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			BarberID:    ap.BarberID,
			BarberName:  ap.Barber.Name,
			Date:        ap.Date,
			Time:        ap.Time,
			TimeDisplay: display(ap.Time),
			FirstName:   ap.FirstName,
			LastName:    ap.LastName,
			Phone:       ap.Phone,
			Service:     ap.Service,
		})
	}
	return out
}

func NewPublicAppointmentList(list []models.Appointment) []PublicAppointmentDTO {
	out := make([]PublicAppointmentDTO, 0, len(list))
	for _, ap := range list {
		out = append(out, PublicAppointmentDTO{
			ID:          ap.ID,
			BarberID:    ap.BarberID,
			BarberName:  ap.Barber.Name,
			Date:        ap.Date,
			Time:        ap.Time,
			TimeDisplay: display(ap.Time),
		})
	}
	return out
}
