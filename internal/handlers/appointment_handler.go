package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainappointment "github.com/BruksfildServices01/barberias/internal/domain/appointment"
	"github.com/BruksfildServices01/barberias/internal/dto"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/timeofday"
	"github.com/BruksfildServices01/barberias/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barberias/internal/usecase/appointment"
)

// HeaderDeviceID identifies the booking device for the reservation quota.
const HeaderDeviceID = "X-Device-ID"

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreatePublicAppointment
	update       *ucAppointment.UpdateAppointment
	remove       *ucAppointment.DeleteAppointment
	list         *ucAppointment.ListAppointments
	filter       *ucAppointment.FilterAppointments
	sameDay      *ucAppointment.FindSameDayBooking

	log *zap.Logger
	now func() time.Time
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreatePublicAppointment,
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	filter *ucAppointment.FilterAppointments,
	sameDay *ucAppointment.FindSameDayBooking,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		update:       update,
		remove:       remove,
		list:         list,
		filter:       filter,
		sameDay:      sameDay,
		log:          log,
		now:          time.Now,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

// AppointmentRequest is the create body. On update empty fields keep their
// current value.
type AppointmentRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Phone     string `json:"telefono"`
	Date      string `json:"fecha"`
	Time      string `json:"hora"`
	Service   string `json:"servicio"`
	BarberID  uint   `json:"barbero_id"`
}

type CreateAppointmentResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
	Warning string `json:"aviso,omitempty"`
}

type SlotResponse struct {
	Time    string `json:"hora"`
	Display string `json:"display"`
}

type AvailabilityResponse struct {
	BarberID uint           `json:"barbero_id"`
	Date     string         `json:"fecha"`
	Day      string         `json:"dia"`
	Type     string         `json:"tipo"`
	Status   string         `json:"estado"`
	Slots    []SlotResponse `json:"horarios"`
}

type ExistingResponse struct {
	Exists      bool                      `json:"existe"`
	Appointment *dto.PublicAppointmentDTO `json:"cita,omitempty"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// GET /api/disponibilidad?fecha=&barbero_id=
func (h *AppointmentHandler) Availability(c *gin.Context) {
	t, ok := tenantOf(c, h.log)
	if !ok {
		return
	}

	barberID, err := requiredBarber(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	fecha := strings.TrimSpace(c.Query("fecha"))
	if fecha == "" {
		httperr.Respond(c, h.log, ucAppointment.ErrDateRequired)
		return
	}
	date, err := timezone.ParseDate(fecha, t.Timezone)
	if err != nil {
		httperr.Respond(c, h.log, ucAppointment.ErrInvalidDate)
		return
	}
	if !domainappointment.WithinBookingWindow(date, timezone.Today(h.now(), t.Timezone)) {
		httperr.Respond(c, h.log, ucAppointment.ErrOutsideWindow)
		return
	}

	av, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		TenantID: t.ID,
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	slots := make([]SlotResponse, 0, len(av.Slots))
	for _, s := range av.Slots {
		display, err := timeofday.To12h(s)
		if err != nil {
			display = s
		}
		slots = append(slots, SlotResponse{Time: s, Display: display})
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		BarberID: barberID,
		Date:     av.Day.Date,
		Day:      av.Day.Weekday,
		Type:     string(av.Day.Origin),
		Status:   av.Status(),
		Slots:    slots,
	})
}

// ======================================================
// CREATE (PÚBLICO)
// ======================================================

// POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	t, ok := tenantOf(c, h.log)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, h.log, ucAppointment.ErrMissingFields)
		return
	}

	res, err := h.create.Execute(c.Request.Context(), ucAppointment.CreatePublicInput{
		TenantID:  t.ID,
		Timezone:  t.Timezone,
		BarberID:  req.BarberID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Service:   req.Service,
		Date:      req.Date,
		Time:      req.Time,
		DeviceID:  c.GetHeader(HeaderDeviceID),
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, CreateAppointmentResponse{
		ID:      res.Appointment.ID,
		Message: "Cita agendada correctamente",
		Warning: res.Warning,
	})
}

// ======================================================
// PUBLIC LOOKUPS
// ======================================================

// GET /api/appointments/filter?date=&barbero_id=|barbero=
func (h *AppointmentHandler) Filter(c *gin.Context) {
	t, ok := tenantOf(c, h.log)
	if !ok {
		return
	}

	barberID, err := optionalBarber(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	list, err := h.filter.Execute(
		c.Request.Context(),
		t.ID,
		c.Query("date"),
		barberID,
		c.Query("barbero"),
	)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/appointments/existente?telefono=&fecha=
func (h *AppointmentHandler) Existing(c *gin.Context) {
	t, ok := tenantOf(c, h.log)
	if !ok {
		return
	}

	ap, err := h.sameDay.Execute(c.Request.Context(), t.ID, c.Query("telefono"), c.Query("fecha"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	if ap == nil {
		c.JSON(http.StatusOK, ExistingResponse{Exists: false})
		return
	}

	// public route: barber and time only
	item := dto.NewPublicAppointmentList([]models.Appointment{*ap})[0]
	c.JSON(http.StatusOK, ExistingResponse{Exists: true, Appointment: &item})
}

// ======================================================
// STAFF
// ======================================================

// GET /api/appointments[?barbero_id=&fecha=]
func (h *AppointmentHandler) List(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	barberID, err := optionalBarber(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	list, err := h.list.Execute(c.Request.Context(), actor, barberID, strings.TrimSpace(c.Query("fecha")))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /api/appointments/:id
func (h *AppointmentHandler) Update(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, h.log, errInvalidRequest)
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), actor, ucAppointment.UpdateInput{
		ID:        id,
		BarberID:  req.BarberID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Service:   req.Service,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cita actualizada correctamente",
		"cita":    dto.NewAppointmentList([]models.Appointment{*ap})[0],
	})
}

// DELETE /api/appointments/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cita eliminada correctamente"})
}
