package auditmock

import (
	"context"

	domain "control-horas/internal/domain/audit"
)

// Repo is a function-backed mock that satisfies audit.Repository.
type Repo struct {
	RecordFn func(ctx context.Context, e *domain.Entry) error
	RecentFn func(ctx context.Context, limit int) ([]domain.Entry, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Record(ctx context.Context, e *domain.Entry) error {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, e)
	}
	return nil
}

func (m *Repo) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	if m.RecentFn != nil {
		return m.RecentFn(ctx, limit)
	}
	return nil, nil
}
