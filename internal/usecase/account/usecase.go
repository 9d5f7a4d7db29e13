package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainAccount "control-horas/internal/domain/account"
	"control-horas/internal/domain/audit"
	"control-horas/internal/logging"
	"control-horas/pkg/id"
	"control-horas/pkg/num"
)

var ErrMissingFields = errors.New("nombre y contraseña son obligatorios")

type Usecase struct {
	accounts domainAccount.Repository
	audit    audit.Repository // nil disables the trail
}

func NewUsecase(accounts domainAccount.Repository, trail audit.Repository) *Usecase {
	return &Usecase{accounts: accounts, audit: trail}
}

var log = logging.Component("provisioning")

type CreateInput struct {
	Actor        string
	Name         string
	Password     string
	Role         string
	InitialHours string
}

// Create appends one account row aligned to the sheet's header order.
// Duplicate names are accepted; later lookups resolve them by their own
// first-match or last-match rules.
func (u *Usecase) Create(ctx context.Context, in CreateInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Password == "" {
		return ErrMissingFields
	}

	a := &domainAccount.Account{
		Name:     name,
		Password: in.Password,
		Role:     domainAccount.NormalizeRole(in.Role),
		Hours:    num.ParseCommaOr(in.InitialHours, 0),
	}
	if err := u.accounts.Append(ctx, a); err != nil {
		return err
	}

	if u.audit != nil {
		err := u.audit.Record(ctx, &audit.Entry{
			EventID: id.New(),
			Actor:   in.Actor,
			Action:  audit.ActionCreateAccount,
			Detail:  fmt.Sprintf("alta de %s (%s, %v horas)", a.Name, a.Role, a.Hours),
		})
		if err != nil {
			log.Warn().Err(err).Msg("audit write failed")
		}
	}
	return nil
}
