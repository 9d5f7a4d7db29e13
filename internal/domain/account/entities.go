package account

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleEmployee Role = "empleado"
	RoleManager  Role = "gestor"
)

var (
	ErrNotFound = errors.New("account not found")
)

// Account is one row of the "Saldos" sheet. Passwords are stored in plain
// text in the sheet; that is the store's contract, not ours to change here.
type Account struct {
	Name     string
	Password string
	Role     Role
	Hours    float64
}

// NormalizeRole lowercases a raw role cell and defaults blanks to empleado.
func NormalizeRole(raw string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if r == "" {
		return RoleEmployee
	}
	return r
}

func (r Role) IsManager() bool { return r == RoleManager }
