package engine

import (
	"fmt"
	"time"
)

// ValidationError reports malformed input. It is surfaced synchronously and
// never retried. Messages are kept in both site languages so handlers can
// return them field-scoped without a translation pass.
type ValidationError struct {
	Field     string
	Message   string
	MessageAr string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ConflictError reports that a requested range overlaps an existing
// interval. Client-side it drives UI messaging; server-side at submission
// it blocks the write.
type ConflictError struct {
	Date     time.Time
	StudioID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested range conflicts with an existing booking on %s", e.Date.Format("2006-01-02"))
}
