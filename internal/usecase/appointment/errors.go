package appointment

import "github.com/BruksfildServices01/barberias/internal/httperr"

var (
	ErrSlotTaken = httperr.SlotConflictErr(
		"cita_duplicada",
		"Ya existe una cita para esta fecha y hora, intenta otra hora.",
	)
	ErrAppointmentNotFound = httperr.NotFoundErr("cita_no_encontrada", "Cita no encontrada.")
	ErrEditForbidden       = httperr.ForbiddenErr("forbidden", "No tienes permisos para editar esta cita.")
	ErrDeleteForbidden     = httperr.ForbiddenErr("forbidden", "No tienes permisos para eliminar esta cita.")

	ErrMissingFields = httperr.BadRequestErr("campos_requeridos", "Faltan campos obligatorios.")
	ErrInvalidDate   = httperr.BadRequestErr("fecha_invalida", "Fecha inválida, use YYYY-MM-DD.")
	ErrInvalidTime   = httperr.BadRequestErr("hora_invalida", "Hora inválida.")
	ErrInvalidPhone  = httperr.BadRequestErr("telefono_invalido", "Teléfono inválido.")
	ErrDateRequired  = httperr.BadRequestErr("fecha_requerida", "Fecha no proporcionada.")
	ErrOutsideWindow = httperr.BadRequestErr(
		"fecha_fuera_de_rango",
		"Solo puedes reservar desde hoy hasta un mes adelante.",
	)

	ErrQuotaExceeded = httperr.New(
		httperr.KindTooManyRequests,
		"limite_reservas",
		"Has alcanzado el límite de reservas permitido en 24 horas.",
	)
)

// QuotaWarning is returned with a booking that went over the advisory quota.
const QuotaWarning = "Has realizado varias reservas en las últimas 24 horas."
