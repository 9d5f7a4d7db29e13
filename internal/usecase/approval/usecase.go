package approval

import (
	"context"
	"fmt"

	"control-horas/internal/domain/account"
	"control-horas/internal/domain/audit"
	domainRequest "control-horas/internal/domain/request"
	"control-horas/internal/logging"
	"control-horas/pkg/id"
)

// ActionApprove is the literal posted by the manager form; any other value
// rejects.
const ActionApprove = "aprobar"

// BalanceUpdateError reports the accepted inconsistency window: the request
// is already Aprobado but the balance cell could not be deducted. There is
// no rollback; the manager sees an explicit error instead.
type BalanceUpdateError struct {
	Employee string
	Hours    float64
	Err      error
}

func (e *BalanceUpdateError) Error() string {
	return fmt.Sprintf("request approved but balance of %s not reduced by %v hours: %v", e.Employee, e.Hours, e.Err)
}

func (e *BalanceUpdateError) Unwrap() error { return e.Err }

type Usecase struct {
	accounts account.Repository
	requests domainRequest.Repository
	audit    audit.Repository // nil disables the trail
}

func NewUsecase(accounts account.Repository, requests domainRequest.Repository, trail audit.Repository) *Usecase {
	return &Usecase{accounts: accounts, requests: requests, audit: trail}
}

var log = logging.Component("approval")

// List returns every request row with its 1-based sheet position; the UI
// references rows positionally in Decide.
func (u *Usecase) List(ctx context.Context) ([]domainRequest.Request, error) {
	return u.requests.List(ctx)
}

type DecideInput struct {
	Actor  string // manager username, for the audit trail
	Row    int    // 1-based, row 1 is the header
	Action string
}

type DecisionDTO struct {
	Employee   string
	Hours      float64
	Status     domainRequest.Status
	NewBalance float64
}

// Decide reads the target row (header columns located by name, strict hours
// parse), writes the new status, and on approval deducts the hours from the
// employee's balance, clamped at zero. The status write is not rolled back
// when the deduction fails.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	req, err := u.requests.ReadRow(ctx, in.Row)
	if err != nil {
		return nil, err
	}

	status := domainRequest.StatusRejected
	if in.Action == ActionApprove {
		status = domainRequest.StatusApproved
	}
	if err := u.requests.SetStatus(ctx, in.Row, status); err != nil {
		return nil, err
	}

	dto := &DecisionDTO{Employee: req.Employee, Hours: req.Hours, Status: status}
	if status == domainRequest.StatusApproved {
		newBalance, err := u.accounts.DeductHours(ctx, req.Employee, req.Hours)
		if err != nil {
			u.record(ctx, in, req, status, "saldo no actualizado")
			return nil, &BalanceUpdateError{Employee: req.Employee, Hours: req.Hours, Err: err}
		}
		dto.NewBalance = newBalance
	}

	u.record(ctx, in, req, status, "")
	return dto, nil
}

func (u *Usecase) record(ctx context.Context, in DecideInput, req *domainRequest.Request, status domainRequest.Status, note string) {
	if u.audit == nil {
		return
	}
	detail := fmt.Sprintf("fila %d: %s %v horas de %s -> %s", in.Row, req.Date, req.Hours, req.Employee, status)
	if note != "" {
		detail += " (" + note + ")"
	}
	err := u.audit.Record(ctx, &audit.Entry{
		EventID: id.New(),
		Actor:   in.Actor,
		Action:  audit.ActionDecide,
		Detail:  detail,
	})
	if err != nil {
		log.Warn().Err(err).Msg("audit write failed")
	}
}
