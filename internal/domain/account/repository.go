package account

import "context"

type Repository interface {
	// List returns every account row of the Saldos sheet in table order.
	List(ctx context.Context) ([]Account, error)

	// GetByName returns the first row whose Nombre matches exactly.
	GetByName(ctx context.Context, name string) (*Account, error)

	// Append adds a new account row, aligned to the sheet's header order.
	Append(ctx context.Context, a *Account) error

	// DeductHours subtracts hours from the first matching account, clamping
	// the result at zero, and returns the new balance.
	DeductHours(ctx context.Context, name string, hours float64) (float64, error)
}
