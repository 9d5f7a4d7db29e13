package request

import "errors"

type Status string

const (
	StatusPending  Status = "Pendiente"
	StatusApproved Status = "Aprobado"
	StatusRejected Status = "Rechazado"
)

var (
	ErrRowNotFound = errors.New("request row not found")
	// ErrBadHours: the Cantidad de horas cell is not numeric; a decision on
	// such a row must abort before any mutation.
	ErrBadHours = errors.New("request hours value is not numeric")
)

// Request is one row of the "Solicitudes" sheet. Row is the 1-based sheet
// position (row 1 is the header, so the first request is row 2); it is the
// only handle the approval flow has, and it shifts if rows are deleted out
// of band.
type Request struct {
	Row         int
	Employee    string
	Date        string
	Hours       float64
	Reason      string
	SubmittedAt string
	Status      Status
}
