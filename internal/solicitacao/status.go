package solicitacao

import (
	"fmt"

	"passagens/internal/user"
)

// Status is the single source of truth for a request's workflow position.
type Status string

const (
	StatusPendenteGerente Status = "pendente_gerente"
	StatusPendenteDiretor Status = "pendente_diretor"
	StatusPendenteCompras Status = "pendente_compras"
	StatusProcessada      Status = "processada"
	StatusRejeitada       Status = "rejeitada"
)

// legacyAliases maps status strings left behind by earlier schema revisions
// to the canonical set. The service only ever writes canonical values, but
// stored rows and old clients may still carry these.
var legacyAliases = map[string]Status{
	"PENDENTE_GERENTE": StatusPendenteGerente,
	"PENDENTE_GESTOR":  StatusPendenteGerente,
	"PENDENTE_DIRETOR": StatusPendenteDiretor,
	"EM_COMPRA":        StatusPendenteCompras,
	"APROVADO_FINAL":   StatusPendenteCompras,
	"COMPRADA":         StatusProcessada,
	"REJEITADA":        StatusRejeitada,
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPendenteGerente, StatusPendenteDiretor, StatusPendenteCompras, StatusProcessada, StatusRejeitada:
		return Status(s), nil
	}
	if canonical, ok := legacyAliases[s]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unknown status: %s", s)
}

// Label returns the display label for a canonical status and fails loudly on
// anything outside the set, instead of echoing an unrecognized raw value.
func Label(s Status) (string, error) {
	switch s {
	case StatusPendenteGerente:
		return "Pendente Gerente", nil
	case StatusPendenteDiretor:
		return "Pendente Diretor", nil
	case StatusPendenteCompras:
		return "Pendente Compras", nil
	case StatusProcessada:
		return "Processada", nil
	case StatusRejeitada:
		return "Rejeitada", nil
	default:
		return "", fmt.Errorf("no label for status: %s", s)
	}
}

var allowedTransitions = map[Status]map[Status]bool{
	StatusPendenteGerente: {StatusPendenteDiretor: true, StatusRejeitada: true},
	StatusPendenteDiretor: {StatusPendenteCompras: true, StatusRejeitada: true},
	StatusPendenteCompras: {StatusProcessada: true},
	StatusProcessada:      {},
	StatusRejeitada:       {},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

// RequiredRole returns the role allowed to act on a request in the given
// status. Terminal states have no actor.
func RequiredRole(s Status) (user.Role, bool) {
	switch s {
	case StatusPendenteGerente:
		return user.RoleGerente, true
	case StatusPendenteDiretor:
		return user.RoleDiretor, true
	case StatusPendenteCompras:
		return user.RoleCompras, true
	default:
		return "", false
	}
}

// CanAct is the pre-flight authorization check: a mismatch is rejected
// locally, before any write is attempted.
func CanAct(role user.Role, s Status) bool {
	required, ok := RequiredRole(s)
	if !ok {
		return false
	}
	return role == required
}
