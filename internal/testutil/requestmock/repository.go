package requestmock

import (
	"context"

	domain "control-horas/internal/domain/request"
)

// Repo is a function-backed mock that satisfies request.Repository.
type Repo struct {
	ListFn           func(ctx context.Context) ([]domain.Request, error)
	ListByEmployeeFn func(ctx context.Context, name string) ([]domain.Request, error)
	AppendFn         func(ctx context.Context, r *domain.Request) error
	ReadRowFn        func(ctx context.Context, row int) (*domain.Request, error)
	SetStatusFn      func(ctx context.Context, row int, st domain.Status) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) List(ctx context.Context) ([]domain.Request, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByEmployee(ctx context.Context, name string) ([]domain.Request, error) {
	if m.ListByEmployeeFn != nil {
		return m.ListByEmployeeFn(ctx, name)
	}
	return nil, nil
}

func (m *Repo) Append(ctx context.Context, r *domain.Request) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, r)
	}
	return nil
}

func (m *Repo) ReadRow(ctx context.Context, row int) (*domain.Request, error) {
	if m.ReadRowFn != nil {
		return m.ReadRowFn(ctx, row)
	}
	return nil, domain.ErrRowNotFound
}

func (m *Repo) SetStatus(ctx context.Context, row int, st domain.Status) error {
	if m.SetStatusFn != nil {
		return m.SetStatusFn(ctx, row, st)
	}
	return nil
}
