package barber

import "github.com/BruksfildServices01/barberias/internal/httperr"

var ErrNotFound = httperr.NotFoundErr("barbero_no_encontrado", "Barbero no encontrado.")
