package sheetrepo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"control-horas/internal/domain/request"
	"control-horas/internal/infrastructure/sheet"
	"control-horas/pkg/num"
)

// RequestRepository maps rows of the Solicitudes sheet into typed requests,
// keeping their 1-based row numbers as the decision handle.
type RequestRepository struct {
	store sheet.Store
}

var _ request.Repository = (*RequestRepository)(nil)

func NewRequestRepository(store sheet.Store) *RequestRepository {
	return &RequestRepository{store: store}
}

type requestColumns struct {
	name, date, hours, reason, submitted, status int
}

// columns locates every known column and fails on the first missing
// required one. Callers pass the columns their operation actually needs;
// the rest read as blank cells when absent.
func (r *RequestRepository) columns(header []string, required ...string) (requestColumns, error) {
	cols := requestColumns{
		name:      sheet.ColumnIndex(header, colNombre),
		date:      sheet.ColumnIndex(header, colFecha),
		hours:     sheet.ColumnIndex(header, colCantidad),
		reason:    sheet.ColumnIndex(header, colMotivo),
		submitted: sheet.ColumnIndex(header, colRegistro),
		status:    sheet.ColumnIndex(header, colEstado),
	}
	for _, name := range required {
		if sheet.ColumnIndex(header, name) < 0 {
			return cols, &sheet.MissingColumnError{Sheet: sheet.SheetRequests, Column: name}
		}
	}
	return cols, nil
}

func (r *RequestRepository) List(ctx context.Context) ([]request.Request, error) {
	rows, err := r.store.Rows(ctx, sheet.SheetRequests)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	cols, err := r.columns(rows[0], colNombre, colFecha, colCantidad, colEstado)
	if err != nil {
		return nil, err
	}

	out := make([]request.Request, 0, len(rows)-1)
	for i, row := range rows[1:] {
		out = append(out, request.Request{
			Row:         i + 2,
			Employee:    at(row, cols.name),
			Date:        at(row, cols.date),
			Hours:       num.ParseCommaOr(at(row, cols.hours), 0),
			Reason:      at(row, cols.reason),
			SubmittedAt: at(row, cols.submitted),
			Status:      request.Status(at(row, cols.status)),
		})
	}
	return out, nil
}

func (r *RequestRepository) ListByEmployee(ctx context.Context, name string) ([]request.Request, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	own := make([]request.Request, 0, len(all))
	for _, req := range all {
		if req.Employee == name {
			own = append(own, req)
		}
	}
	return own, nil
}

func (r *RequestRepository) Append(ctx context.Context, req *request.Request) error {
	rows, err := r.store.Rows(ctx, sheet.SheetRequests)
	if err != nil {
		return fmt.Errorf("read requests header: %w", err)
	}
	if len(rows) == 0 || sheet.ColumnIndex(rows[0], colNombre) < 0 {
		return &sheet.MissingColumnError{Sheet: sheet.SheetRequests, Column: colNombre}
	}

	byColumn := map[string]string{
		colNombre:   req.Employee,
		colFecha:    req.Date,
		colCantidad: formatHours(req.Hours),
		colMotivo:   req.Reason,
		colRegistro: req.SubmittedAt,
		colEstado:   string(req.Status),
	}
	header := rows[0]
	values := make([]string, len(header))
	for i, col := range header {
		values[i] = byColumn[col]
	}
	if err := r.store.AppendRow(ctx, sheet.SheetRequests, values); err != nil {
		return fmt.Errorf("append request: %w", err)
	}
	return nil
}

func (r *RequestRepository) ReadRow(ctx context.Context, row int) (*request.Request, error) {
	if row < 2 {
		return nil, request.ErrRowNotFound
	}
	rows, err := r.store.Rows(ctx, sheet.SheetRequests)
	if err != nil {
		return nil, fmt.Errorf("read request row %d: %w", row, err)
	}
	if len(rows) == 0 {
		return nil, request.ErrRowNotFound
	}
	// A decision only needs the employee, the hours and somewhere to write
	// the status; other columns read as blank.
	cols, err := r.columns(rows[0], colNombre, colCantidad, colEstado)
	if err != nil {
		return nil, err
	}
	if row > len(rows) {
		return nil, request.ErrRowNotFound
	}
	values := rows[row-1]

	// Strict here: a decision must not proceed on a non-numeric hours cell.
	hours, err := strconv.ParseFloat(strings.TrimSpace(at(values, cols.hours)), 64)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", row, request.ErrBadHours)
	}

	return &request.Request{
		Row:         row,
		Employee:    at(values, cols.name),
		Date:        at(values, cols.date),
		Hours:       hours,
		Reason:      at(values, cols.reason),
		SubmittedAt: at(values, cols.submitted),
		Status:      request.Status(at(values, cols.status)),
	}, nil
}

func (r *RequestRepository) SetStatus(ctx context.Context, row int, st request.Status) error {
	if row < 2 {
		return request.ErrRowNotFound
	}
	rows, err := r.store.Rows(ctx, sheet.SheetRequests)
	if err != nil {
		return fmt.Errorf("read requests header: %w", err)
	}
	if len(rows) == 0 {
		return request.ErrRowNotFound
	}
	iStatus := sheet.ColumnIndex(rows[0], colEstado)
	if iStatus < 0 {
		return &sheet.MissingColumnError{Sheet: sheet.SheetRequests, Column: colEstado}
	}
	if err := r.store.UpdateCell(ctx, sheet.SheetRequests, row, iStatus+1, string(st)); err != nil {
		return fmt.Errorf("set status of row %d: %w", row, err)
	}
	return nil
}
