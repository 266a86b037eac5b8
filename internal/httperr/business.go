package httperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindTooManyRequests
	KindUnavailable
)

// BusinessError is an expected failure whose message may reach the client.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	// Status overrides the status derived from Kind when non-zero.
	Status int
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindBadRequest, Code: code}
}

func New(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func BadRequestErr(code, message string) error {
	return New(KindBadRequest, code, message)
}

func NotFoundErr(code, message string) error {
	return New(KindNotFound, code, message)
}

func ConflictErr(code, message string) error {
	return New(KindConflict, code, message)
}

// SlotConflictErr is a Conflict reported as 400, the status booking clients
// expect for a taken slot.
func SlotConflictErr(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message, Status: http.StatusBadRequest}
}

func UnauthorizedErr(code, message string) error {
	return New(KindUnauthorized, code, message)
}

func ForbiddenErr(code, message string) error {
	return New(KindForbidden, code, message)
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return be, false
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}

func IsKind(err error, kind Kind) bool {
	be, ok := AsBusiness(err)
	return ok && be.Kind == kind
}
