package accountmock

import (
	"context"

	domain "control-horas/internal/domain/account"
)

// Repo is a function-backed mock that satisfies account.Repository.
// Fill in the fields a test needs; unfilled ones return zero values.
type Repo struct {
	ListFn        func(ctx context.Context) ([]domain.Account, error)
	GetByNameFn   func(ctx context.Context, name string) (*domain.Account, error)
	AppendFn      func(ctx context.Context, a *domain.Account) error
	DeductHoursFn func(ctx context.Context, name string, hours float64) (float64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) List(ctx context.Context) ([]domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Append(ctx context.Context, a *domain.Account) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, a)
	}
	return nil
}

func (m *Repo) DeductHours(ctx context.Context, name string, hours float64) (float64, error) {
	if m.DeductHoursFn != nil {
		return m.DeductHoursFn(ctx, name, hours)
	}
	return 0, domain.ErrNotFound
}
