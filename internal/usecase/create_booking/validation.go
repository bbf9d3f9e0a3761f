package create_booking

import (
	"time"
)

// validateInterval проверяет интервал аренды
// Порядок проверок фиксирован: первая нарушенная определяет ошибку
func validateInterval(req *Request, now time.Time) error {
	if req.Start == nil {
		return ErrStartRequired
	}

	if req.End == nil {
		return ErrEndRequired
	}

	start, end := *req.Start, *req.End

	if end.Before(now) {
		return ErrEndInPast
	}

	if end.Before(start) {
		return ErrEndBeforeStart
	}

	if end.Equal(start) {
		return ErrEmptyInterval
	}

	if start.Before(now) {
		return ErrStartInPast
	}

	return nil
}
