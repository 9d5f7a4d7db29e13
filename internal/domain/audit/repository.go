package audit

import "context"

type Repository interface {
	// Record appends one entry. Callers treat failures as best-effort.
	Record(ctx context.Context, e *Entry) error

	// Recent returns the newest entries, most recent first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
