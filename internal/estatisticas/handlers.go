package estatisticas

import (
	"net/http"

	"passagens/internal/api"
	"passagens/internal/solicitacao"
	"passagens/pkg/logging"
)

type Handlers struct {
	Solicitacoes *solicitacao.Repository
}

type Response struct {
	Contagem
	ValorTotal string `json:"valorTotal"`
	Total      int    `json:"total"`
}

// Dashboard aggregates every request into per-status counts plus the
// estimated spend. An optional busca term narrows the set first.
func (h Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	items, err := h.Solicitacoes.List(r.Context())
	if err != nil {
		logging.Component("estatisticas").Error().Err(err).Msg("list solicitacoes")
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	if busca := r.URL.Query().Get("busca"); busca != "" {
		items = Filtrar(items, busca)
	}

	resp := Response{
		Contagem:   Classify(items),
		ValorTotal: TotalEstimado(items).StringFixed(2),
		Total:      len(items),
	}
	api.WriteJSON(w, http.StatusOK, resp)
}
