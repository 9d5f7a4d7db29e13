package auth

import (
	"context"
	"errors"
	"fmt"

	"control-horas/internal/domain/account"
	"control-horas/internal/domain/audit"
	"control-horas/internal/logging"
	"control-horas/pkg/id"
)

// ErrInvalidCredentials is the single login failure: unknown user and wrong
// password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("credenciales inválidas")

type Identity struct {
	Username string
	Role     account.Role
}

type Usecase struct {
	accounts account.Repository
	audit    audit.Repository // nil disables the trail
}

func NewUsecase(accounts account.Repository, trail audit.Repository) *Usecase {
	return &Usecase{accounts: accounts, audit: trail}
}

var log = logging.Component("auth")

// Authenticate re-reads the Balances sheet on every attempt (no cache) and
// compares the plaintext password exactly. Rows without a name or password
// cannot log in. When names repeat, the later row wins here, which is the
// opposite of the first-match balance lookup; both behaviors are kept.
func (u *Usecase) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	accounts, err := u.accounts.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("login: cannot read accounts")
		return nil, ErrInvalidCredentials
	}

	byName := make(map[string]account.Account, len(accounts))
	for _, a := range accounts {
		if a.Name == "" || a.Password == "" {
			continue
		}
		byName[a.Name] = a
	}

	a, ok := byName[username]
	if !ok || a.Password != password {
		return nil, ErrInvalidCredentials
	}

	if u.audit != nil {
		err := u.audit.Record(ctx, &audit.Entry{
			EventID: id.New(),
			Actor:   a.Name,
			Action:  audit.ActionLogin,
			Detail:  fmt.Sprintf("inicio de sesión (%s)", a.Role),
		})
		if err != nil {
			log.Warn().Err(err).Msg("audit write failed")
		}
	}
	return &Identity{Username: a.Name, Role: a.Role}, nil
}
