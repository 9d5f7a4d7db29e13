package request

import (
	"context"
	"errors"
	"time"

	"control-horas/internal/domain/account"
	domainRequest "control-horas/internal/domain/request"
	"control-horas/internal/logging"
)

var ErrInvalidInput = errors.New("invalid request input")

// timestampLayout is the server-generated submission timestamp format, as
// stored in the Fecha de registro column.
const timestampLayout = "2006-01-02 15:04:05"

type Usecase struct {
	accounts account.Repository
	requests domainRequest.Repository
	now      func() time.Time
}

func NewUsecase(accounts account.Repository, requests domainRequest.Repository) *Usecase {
	return &Usecase{accounts: accounts, requests: requests, now: time.Now}
}

var log = logging.Component("request")

type SubmitInput struct {
	Employee string
	Date     string
	Hours    float64
	Reason   string
}

// Submit appends one Pendiente row with a server-side timestamp. The
// employee's remaining balance is deliberately not checked here; the
// manager decides.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) error {
	if in.Employee == "" || in.Date == "" || in.Hours <= 0 {
		return ErrInvalidInput
	}
	return u.requests.Append(ctx, &domainRequest.Request{
		Employee:    in.Employee,
		Date:        in.Date,
		Hours:       in.Hours,
		Reason:      in.Reason,
		SubmittedAt: u.now().Format(timestampLayout),
		Status:      domainRequest.StatusPending,
	})
}

type OverviewDTO struct {
	Balance  float64
	Requests []domainRequest.Request
}

// Overview is the employee home view: current balance (first name match,
// 0 when absent) and the employee's own requests in table order. Store
// failures degrade to zero/empty with a logged message.
func (u *Usecase) Overview(ctx context.Context, employee string) *OverviewDTO {
	dto := &OverviewDTO{}

	a, err := u.accounts.GetByName(ctx, employee)
	switch {
	case err == nil:
		dto.Balance = a.Hours
	case errors.Is(err, account.ErrNotFound):
		// no row, balance stays 0
	default:
		log.Error().Err(err).Str("employee", employee).Msg("cannot read balance")
	}

	own, err := u.requests.ListByEmployee(ctx, employee)
	if err != nil {
		log.Error().Err(err).Str("employee", employee).Msg("cannot read requests")
		return dto
	}
	dto.Requests = own
	return dto
}
