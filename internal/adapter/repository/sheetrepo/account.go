package sheetrepo

import (
	"context"
	"fmt"

	"control-horas/internal/domain/account"
	"control-horas/internal/infrastructure/sheet"
	"control-horas/pkg/num"
)

// AccountRepository maps rows of the Saldos sheet into typed accounts.
type AccountRepository struct {
	store sheet.Store
}

var _ account.Repository = (*AccountRepository)(nil)

func NewAccountRepository(store sheet.Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) List(ctx context.Context) ([]account.Account, error) {
	rows, err := r.store.Rows(ctx, sheet.SheetBalances)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	iName := sheet.ColumnIndex(header, colNombre)
	iPass := sheet.ColumnIndex(header, colPassword)
	if iName < 0 {
		return nil, &sheet.MissingColumnError{Sheet: sheet.SheetBalances, Column: colNombre}
	}
	if iPass < 0 {
		return nil, &sheet.MissingColumnError{Sheet: sheet.SheetBalances, Column: colPassword}
	}
	iRole := sheet.ColumnIndex(header, colRol)
	iHours := sheet.ColumnIndex(header, colHoras)

	out := make([]account.Account, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, account.Account{
			Name:     at(row, iName),
			Password: at(row, iPass),
			Role:     account.NormalizeRole(at(row, iRole)),
			Hours:    num.ParseCommaOr(at(row, iHours), 0),
		})
	}
	return out, nil
}

func (r *AccountRepository) GetByName(ctx context.Context, name string) (*account.Account, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	// First match wins; duplicate names shadow later rows here.
	for i := range accounts {
		if accounts[i].Name == name {
			return &accounts[i], nil
		}
	}
	return nil, account.ErrNotFound
}

func (r *AccountRepository) Append(ctx context.Context, a *account.Account) error {
	rows, err := r.store.Rows(ctx, sheet.SheetBalances)
	if err != nil {
		return fmt.Errorf("read balances header: %w", err)
	}
	if len(rows) == 0 || sheet.ColumnIndex(rows[0], colNombre) < 0 {
		return &sheet.MissingColumnError{Sheet: sheet.SheetBalances, Column: colNombre}
	}
	header := rows[0]

	byColumn := map[string]string{
		colNombre:   a.Name,
		colPassword: a.Password,
		colRol:      string(a.Role),
		colHoras:    formatHours(a.Hours),
	}
	// Align to the sheet's actual column order; columns we don't know stay
	// blank, values for columns the sheet lacks are dropped.
	values := make([]string, len(header))
	for i, col := range header {
		values[i] = byColumn[col]
	}
	if err := r.store.AppendRow(ctx, sheet.SheetBalances, values); err != nil {
		return fmt.Errorf("append account: %w", err)
	}
	return nil
}

func (r *AccountRepository) DeductHours(ctx context.Context, name string, hours float64) (float64, error) {
	rows, err := r.store.Rows(ctx, sheet.SheetBalances)
	if err != nil {
		return 0, fmt.Errorf("read balances: %w", err)
	}
	if len(rows) == 0 {
		return 0, &sheet.MissingColumnError{Sheet: sheet.SheetBalances, Column: colNombre}
	}
	header := rows[0]
	iName := sheet.ColumnIndex(header, colNombre)
	iHours := sheet.ColumnIndex(header, colHoras)
	if iName < 0 {
		return 0, &sheet.MissingColumnError{Sheet: sheet.SheetBalances, Column: colNombre}
	}
	if iHours < 0 {
		return 0, &sheet.MissingColumnError{Sheet: sheet.SheetBalances, Column: colHoras}
	}

	for i, row := range rows[1:] {
		if at(row, iName) != name {
			continue
		}
		current := num.ParseCommaOr(at(row, iHours), 0)
		newBalance := current - hours
		if newBalance < 0 {
			newBalance = 0
		}
		rowNumber := i + 2 // data starts at sheet row 2
		if err := r.store.UpdateCell(ctx, sheet.SheetBalances, rowNumber, iHours+1, formatHours(newBalance)); err != nil {
			return 0, fmt.Errorf("update balance of %s: %w", name, err)
		}
		return newBalance, nil
	}
	return 0, account.ErrNotFound
}
