package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/domain/schedule"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/httpresp"
	"github.com/BruksfildServices01/barberias/internal/models"
	"github.com/BruksfildServices01/barberias/internal/timezone"
	ucSchedule "github.com/BruksfildServices01/barberias/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	source        *ucSchedule.Source
	getDefault    *ucSchedule.GetDefaultSchedule
	updateDefault *ucSchedule.UpdateDefaultSchedule

	createSpecial *ucSchedule.CreateSpecialSchedule
	listSpecial   *ucSchedule.ListSpecialSchedules
	updateSpecial *ucSchedule.UpdateSpecialSchedule
	deleteSpecial *ucSchedule.DeleteSpecialSchedule

	log *zap.Logger
}

func NewScheduleHandler(
	source *ucSchedule.Source,
	getDefault *ucSchedule.GetDefaultSchedule,
	updateDefault *ucSchedule.UpdateDefaultSchedule,
	createSpecial *ucSchedule.CreateSpecialSchedule,
	listSpecial *ucSchedule.ListSpecialSchedules,
	updateSpecial *ucSchedule.UpdateSpecialSchedule,
	deleteSpecial *ucSchedule.DeleteSpecialSchedule,
	log *zap.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{
		source:        source,
		getDefault:    getDefault,
		updateDefault: updateDefault,
		createSpecial: createSpecial,
		listSpecial:   listSpecial,
		updateSpecial: updateSpecial,
		deleteSpecial: deleteSpecial,
		log:           log,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type SpecialScheduleRequest struct {
	BarberID   uint     `json:"barbero_id"`
	Date       string   `json:"fecha"`
	WorkingDay *bool    `json:"dia_laborable"`
	Morning    []string `json:"horario_manana"`
	Afternoon  []string `json:"horario_tarde"`
}

func (r SpecialScheduleRequest) input() ucSchedule.SpecialScheduleInput {
	working := true
	if r.WorkingDay != nil {
		working = *r.WorkingDay
	}
	return ucSchedule.SpecialScheduleInput{
		BarberID:   r.BarberID,
		Date:       strings.TrimSpace(r.Date),
		WorkingDay: working,
		Morning:    r.Morning,
		Afternoon:  r.Afternoon,
	}
}

type DefaultDayResponse struct {
	Day        string   `json:"dia"`
	Morning    []string `json:"horario_manana"`
	Afternoon  []string `json:"horario_tarde"`
	NonWorking bool     `json:"dia_no_laboral"`
}

type DayScheduleResponse struct {
	Type       string   `json:"tipo"`
	ID         uint     `json:"id,omitempty"`
	BarberID   uint     `json:"barbero_id"`
	Date       string   `json:"fecha"`
	Day        string   `json:"dia"`
	WorkingDay bool     `json:"dia_laborable"`
	Morning    []string `json:"horario_manana"`
	Afternoon  []string `json:"horario_tarde"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ======================================================
// DEFAULT SCHEDULE
// ======================================================

// GET /api/barberos/:id/horario-defecto[?fecha=]
func (h *ScheduleHandler) GetDefault(c *gin.Context) {
	t, ok := tenantOf(c, h.log)
	if !ok {
		return
	}

	barberID, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	fecha := strings.TrimSpace(c.Query("fecha"))
	if fecha == "" {
		week, err := h.getDefault.Week(c.Request.Context(), t.ID, barberID)
		if err != nil {
			httperr.Respond(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, week)
		return
	}

	date, err := timezone.ParseDate(fecha, t.Timezone)
	if err != nil {
		httperr.Respond(c, h.log, ucSchedule.ErrInvalidDate)
		return
	}

	day, err := h.getDefault.Day(c.Request.Context(), t.ID, barberID, date)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, DefaultDayResponse{
		Day:        day.Weekday,
		Morning:    nonNil(day.Morning),
		Afternoon:  nonNil(day.Afternoon),
		NonWorking: day.NonWorkingDay(),
	})
}

// PUT /api/barberos/:id/horario-defecto
func (h *ScheduleHandler) UpdateDefault(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	barberID, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req models.WeeklySchedule
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, h.log, errInvalidRequest)
		return
	}

	week, err := h.updateDefault.Execute(c.Request.Context(), actor, barberID, req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// ======================================================
// RESOLVED DAY
// ======================================================

// GET /api/horarios/fecha/:fecha?barbero_id=
func (h *ScheduleHandler) ByDate(c *gin.Context) {
	t, ok := tenantOf(c, h.log)
	if !ok {
		return
	}

	barberID, err := requiredBarber(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	date, err := timezone.ParseDate(c.Param("fecha"), t.Timezone)
	if err != nil {
		httperr.Respond(c, h.log, ucSchedule.ErrInvalidDate)
		return
	}

	day, err := h.source.ResolveDay(c.Request.Context(), t.ID, barberID, date)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dayResponse(barberID, day))
}

func dayResponse(barberID uint, day schedule.Day) DayScheduleResponse {
	return DayScheduleResponse{
		Type:       string(day.Origin),
		ID:         day.OverrideID,
		BarberID:   barberID,
		Date:       day.Date,
		Day:        day.Weekday,
		WorkingDay: day.Working,
		Morning:    nonNil(day.Morning),
		Afternoon:  nonNil(day.Afternoon),
	}
}

// ======================================================
// SPECIAL SCHEDULES
// ======================================================

// POST /api/horarios
func (h *ScheduleHandler) CreateSpecial(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	var req SpecialScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, h.log, errInvalidRequest)
		return
	}

	o, err := h.createSpecial.Execute(c.Request.Context(), actor, req.input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// GET /api/horarios[?barbero_id=&desde=&hasta=]
func (h *ScheduleHandler) ListSpecial(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	barberID, err := optionalBarber(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	list, err := h.listSpecial.Execute(
		c.Request.Context(),
		actor,
		barberID,
		strings.TrimSpace(c.Query("desde")),
		strings.TrimSpace(c.Query("hasta")),
	)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

// PUT /api/horarios/:id
func (h *ScheduleHandler) UpdateSpecial(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	var req SpecialScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, h.log, errInvalidRequest)
		return
	}

	o, err := h.updateSpecial.Execute(c.Request.Context(), actor, id, req.input())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// DELETE /api/horarios/:id
func (h *ScheduleHandler) DeleteSpecial(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if err := h.deleteSpecial.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Horario especial eliminado"})
}
