package weather

import (
	"errors"
	"net/http"

	"github.com/drblury/swaggerversioning/binding"
)

var (
	// ErrNoForecast is reported when no forecast could be produced.
	ErrNoForecast = errors.New("no forecast available")
	// ErrDaysOutOfRange is reported for a days value outside 1..14.
	ErrDaysOutOfRange = errors.New("days out of range")
)

// ClassifyError maps forecast and binding errors to HTTP statuses. Install
// it with responder.WithErrorClassifier.
func ClassifyError(err error) (int, bool) {
	switch {
	case errors.Is(err, ErrNoForecast):
		return http.StatusNotFound, true
	case errors.Is(err, ErrDaysOutOfRange),
		errors.Is(err, binding.ErrInvalidParameter),
		errors.Is(err, binding.ErrMissingParameter):
		return http.StatusBadRequest, true
	default:
		return 0, false
	}
}
