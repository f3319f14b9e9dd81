package solicitacao

import (
	"testing"

	"passagens/internal/user"
)

func TestParseStatus_Canonical(t *testing.T) {
	for _, s := range []string{"pendente_gerente", "pendente_diretor", "pendente_compras", "processada", "rejeitada"} {
		got, err := ParseStatus(s)
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", s, err)
		}
		if string(got) != s {
			t.Fatalf("ParseStatus(%q) = %q", s, got)
		}
	}
}

func TestParseStatus_LegacyAliases(t *testing.T) {
	cases := map[string]Status{
		"PENDENTE_GERENTE": StatusPendenteGerente,
		"PENDENTE_GESTOR":  StatusPendenteGerente,
		"PENDENTE_DIRETOR": StatusPendenteDiretor,
		"EM_COMPRA":        StatusPendenteCompras,
		"COMPRADA":         StatusProcessada,
		"REJEITADA":        StatusRejeitada,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseStatus_RejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "processando_compras", "aguardando", "Processada"} {
		if _, err := ParseStatus(s); err == nil {
			t.Fatalf("ParseStatus(%q): expected error", s)
		}
	}
}

func TestLabel_FailsOnUnknown(t *testing.T) {
	if _, err := Label(Status("whatever")); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	got, err := Label(StatusPendenteCompras)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if got != "Pendente Compras" {
		t.Fatalf("Label = %q", got)
	}
}

func TestCanTransition_HappyPath(t *testing.T) {
	steps := []struct{ from, to Status }{
		{StatusPendenteGerente, StatusPendenteDiretor},
		{StatusPendenteDiretor, StatusPendenteCompras},
		{StatusPendenteCompras, StatusProcessada},
	}
	for _, s := range steps {
		if !CanTransition(s.from, s.to) {
			t.Fatalf("expected %s -> %s allowed", s.from, s.to)
		}
	}
}

func TestCanTransition_RejectionFromPendingStages(t *testing.T) {
	if !CanTransition(StatusPendenteGerente, StatusRejeitada) {
		t.Fatalf("gerente rejection must be allowed")
	}
	if !CanTransition(StatusPendenteDiretor, StatusRejeitada) {
		t.Fatalf("diretor rejection must be allowed")
	}
	// Purchasing cannot reject, only process.
	if CanTransition(StatusPendenteCompras, StatusRejeitada) {
		t.Fatalf("compras must not reject")
	}
}

func TestTerminalStatesAllowNothing(t *testing.T) {
	for _, terminal := range []Status{StatusProcessada, StatusRejeitada} {
		if !terminal.Terminal() {
			t.Fatalf("%s should be terminal", terminal)
		}
		for _, to := range []Status{StatusPendenteGerente, StatusPendenteDiretor, StatusPendenteCompras, StatusProcessada, StatusRejeitada} {
			if CanTransition(terminal, to) {
				t.Fatalf("terminal %s must not transition to %s", terminal, to)
			}
		}
	}
}

func TestCanAct_RoleGating(t *testing.T) {
	if !CanAct(user.RoleGerente, StatusPendenteGerente) {
		t.Fatalf("gerente must act on pendente_gerente")
	}
	if CanAct(user.RoleColaborador, StatusPendenteGerente) {
		t.Fatalf("colaborador must not act on pendente_gerente")
	}
	if CanAct(user.RoleGerente, StatusPendenteDiretor) {
		t.Fatalf("gerente must not act on pendente_diretor")
	}
	if !CanAct(user.RoleDiretor, StatusPendenteDiretor) {
		t.Fatalf("diretor must act on pendente_diretor")
	}
	if !CanAct(user.RoleCompras, StatusPendenteCompras) {
		t.Fatalf("compras must act on pendente_compras")
	}
	if CanAct(user.RoleCompras, StatusProcessada) {
		t.Fatalf("nobody acts on a terminal state")
	}
}
