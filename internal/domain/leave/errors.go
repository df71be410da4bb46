package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveNotFound     = errors.New("leave application not found")
	ErrInvalidTransition = errors.New("leave application already processed")
	ErrInvalidDecision   = errors.New("decision must be approved or rejected")
	ErrPersistence       = errors.New("leave store operation failed")
)

// OverlapError rejects a submission whose date range collides with an
// existing pending or approved application. It carries the conflicting
// record so callers can show the blocking range.
type OverlapError struct {
	Conflict Application
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("employee already has %s leave for %s to %s",
		e.Conflict.Status,
		e.Conflict.StartDate.Format("2006-01-02"),
		e.Conflict.EndDate.Format("2006-01-02"),
	)
}
