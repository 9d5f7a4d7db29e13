package request

import "context"

type Repository interface {
	// List returns every request row in table order, row numbers included.
	List(ctx context.Context) ([]Request, error)

	// ListByEmployee filters List down to one employee's rows.
	ListByEmployee(ctx context.Context, name string) ([]Request, error)

	// Append adds a new request row.
	Append(ctx context.Context, r *Request) error

	// ReadRow reads one row by 1-based position with strict hours parsing:
	// a non-numeric Cantidad de horas yields ErrBadHours.
	ReadRow(ctx context.Context, row int) (*Request, error)

	// SetStatus writes the Estado cell of one row.
	SetStatus(ctx context.Context, row int, st Status) error
}
