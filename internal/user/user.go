package user

import (
	"fmt"
	"time"
)

// Role is the approval tier a user acts at.
type Role string

const (
	RoleColaborador Role = "colaborador"
	RoleGerente     Role = "gerente"
	RoleDiretor     Role = "diretor"
	RoleCompras     Role = "compras"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleColaborador, RoleGerente, RoleDiretor, RoleCompras:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %s", s)
	}
}

type User struct {
	ID        string    `json:"id"`
	Nome      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	SenhaHash string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}
