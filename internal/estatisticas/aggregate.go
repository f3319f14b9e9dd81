package estatisticas

import (
	"strings"

	"github.com/shopspring/decimal"

	"passagens/internal/solicitacao"
)

// Contagem is the per-status breakdown shown on the dashboard.
type Contagem struct {
	PendenteGerente int `json:"pendenteGerente"`
	PendenteDiretor int `json:"pendenteDiretor"`
	PendenteCompras int `json:"pendenteCompras"`
	Aprovadas       int `json:"aprovadas"`
	Rejeitadas      int `json:"rejeitadas"`
}

// Classify buckets requests by status. Aprovadas counts fully processed
// requests.
func Classify(items []solicitacao.Solicitacao) Contagem {
	var c Contagem
	for _, s := range items {
		switch s.Status {
		case solicitacao.StatusPendenteGerente:
			c.PendenteGerente++
		case solicitacao.StatusPendenteDiretor:
			c.PendenteDiretor++
		case solicitacao.StatusPendenteCompras:
			c.PendenteCompras++
		case solicitacao.StatusProcessada:
			c.Aprovadas++
		case solicitacao.StatusRejeitada:
			c.Rejeitadas++
		}
	}
	return c
}

// TotalEstimado sums the chosen-flight prices across requests. Requests
// without a chosen flight, or with an unparseable price, contribute zero.
func TotalEstimado(items []solicitacao.Solicitacao) decimal.Decimal {
	total := decimal.Zero
	for _, s := range items {
		if s.VooEscolhido == nil || s.VooEscolhido.Preco == "" {
			continue
		}
		p, err := decimal.NewFromString(s.VooEscolhido.Preco)
		if err != nil {
			continue
		}
		total = total.Add(p)
	}
	return total
}

// Filtrar keeps requests whose requester name, origin or destination
// contains the search term, case-insensitively.
func Filtrar(items []solicitacao.Solicitacao, busca string) []solicitacao.Solicitacao {
	busca = strings.ToLower(strings.TrimSpace(busca))
	if busca == "" {
		return items
	}
	var out []solicitacao.Solicitacao
	for _, s := range items {
		if strings.Contains(strings.ToLower(s.SolicitanteNome), busca) ||
			strings.Contains(strings.ToLower(s.Origem), busca) ||
			strings.Contains(strings.ToLower(s.Destino), busca) {
			out = append(out, s)
		}
	}
	return out
}
