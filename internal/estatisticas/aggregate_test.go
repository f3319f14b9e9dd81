package estatisticas

import (
	"testing"

	"passagens/internal/solicitacao"
	"passagens/internal/voos"
)

func comVoo(status solicitacao.Status, preco string) solicitacao.Solicitacao {
	return solicitacao.Solicitacao{
		Status:       status,
		VooEscolhido: &voos.Voo{Preco: preco, Moeda: "BRL"},
	}
}

func TestClassify(t *testing.T) {
	items := []solicitacao.Solicitacao{
		{Status: solicitacao.StatusPendenteGerente},
		{Status: solicitacao.StatusPendenteGerente},
		{Status: solicitacao.StatusPendenteDiretor},
		{Status: solicitacao.StatusPendenteCompras},
		{Status: solicitacao.StatusProcessada},
		{Status: solicitacao.StatusRejeitada},
	}
	c := Classify(items)
	if c.PendenteGerente != 2 || c.PendenteDiretor != 1 || c.PendenteCompras != 1 || c.Aprovadas != 1 || c.Rejeitadas != 1 {
		t.Fatalf("unexpected contagem: %+v", c)
	}

	// Recomputing over the same collection must give the same answer.
	if again := Classify(items); again != c {
		t.Fatalf("classification not idempotent: %+v vs %+v", c, again)
	}
}

func TestTotalEstimado(t *testing.T) {
	items := []solicitacao.Solicitacao{
		comVoo(solicitacao.StatusPendenteGerente, "1000.00"),
		{Status: solicitacao.StatusPendenteDiretor}, // no chosen flight, counts as zero
		comVoo(solicitacao.StatusPendenteCompras, "2500.50"),
	}
	got := TotalEstimado(items)
	if got.String() != "3500.5" {
		t.Fatalf("TotalEstimado = %s, want 3500.5", got)
	}
}

func TestTotalEstimado_IgnoresBadPrices(t *testing.T) {
	items := []solicitacao.Solicitacao{
		comVoo(solicitacao.StatusPendenteGerente, "100.00"),
		comVoo(solicitacao.StatusPendenteGerente, ""),
		comVoo(solicitacao.StatusPendenteGerente, "n/a"),
	}
	if got := TotalEstimado(items); got.String() != "100" {
		t.Fatalf("TotalEstimado = %s, want 100", got)
	}
}

func TestFiltrar(t *testing.T) {
	items := []solicitacao.Solicitacao{
		{SolicitanteNome: "Ana Lima", Origem: "São Paulo", Destino: "Recife"},
		{SolicitanteNome: "Bruno Souza", Origem: "Curitiba", Destino: "Salvador"},
	}

	got := Filtrar(items, "recife")
	if len(got) != 1 || got[0].Destino != "Recife" {
		t.Fatalf("Filtrar(recife) = %+v", got)
	}

	got = Filtrar(items, "bruno")
	if len(got) != 1 || got[0].SolicitanteNome != "Bruno Souza" {
		t.Fatalf("Filtrar(bruno) = %+v", got)
	}

	if got = Filtrar(items, ""); len(got) != 2 {
		t.Fatalf("empty search must keep everything, got %d", len(got))
	}

	if got = Filtrar(items, "fortaleza"); len(got) != 0 {
		t.Fatalf("no match expected, got %d", len(got))
	}
}
