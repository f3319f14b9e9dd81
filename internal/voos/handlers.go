package voos

import (
	"encoding/json"
	"net/http"
	"strings"

	"passagens/internal/api"
	"passagens/pkg/amadeus"
	"passagens/pkg/logging"
)

type Handlers struct {
	Amadeus *amadeus.Client
}

// Buscar searches provider offers and confirms live prices for the top
// results before returning them.
func (h Handlers) Buscar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := amadeus.SearchParams{
		Origem:    strings.ToUpper(strings.TrimSpace(q.Get("origem"))),
		Destino:   strings.ToUpper(strings.TrimSpace(q.Get("destino"))),
		DataIda:   strings.TrimSpace(q.Get("dataIda")),
		DataVolta: strings.TrimSpace(q.Get("dataVolta")),
	}
	if params.Origem == "" || params.Destino == "" || params.DataIda == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "origem, destino and dataIda are required")
		return
	}

	offers, err := h.Amadeus.SearchOffers(r.Context(), params)
	if err != nil {
		logging.Component("voos").Error().Err(err).
			Str("origem", params.Origem).
			Str("destino", params.Destino).
			Msg("flight search failed")
		api.WriteError(w, http.StatusBadGateway, "PROVIDER_ERROR", "flight search is unavailable, try again later")
		return
	}

	voos := make([]Voo, 0, len(offers))
	for _, o := range offers {
		voos = append(voos, FromOffer(o))
	}
	EnrichPrices(r.Context(), h.Amadeus, voos)

	api.WriteJSON(w, http.StatusOK, voos)
}

type ConfirmarPrecoRequest struct {
	FlightOffer json.RawMessage `json:"flightOffer"`
}

type ConfirmarPrecoResponse struct {
	Preco      string `json:"preco"`
	Moeda      string `json:"moeda"`
	GrandTotal string `json:"grandTotal"`
}

// ConfirmarPreco re-validates a single offer's price. The client sends back
// the raw provider document it received from Buscar.
func (h Handlers) ConfirmarPreco(w http.ResponseWriter, r *http.Request) {
	var req ConfirmarPrecoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if len(req.FlightOffer) == 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "flightOffer is required")
		return
	}

	cp, err := h.Amadeus.PriceOffer(r.Context(), req.FlightOffer)
	if err != nil {
		logging.Component("voos").Error().Err(err).Msg("price confirmation failed")
		api.WriteError(w, http.StatusBadGateway, "PROVIDER_ERROR", "price confirmation is unavailable, try again later")
		return
	}

	api.WriteJSON(w, http.StatusOK, ConfirmarPrecoResponse{
		Preco:      cp.GrandTotal,
		Moeda:      cp.Currency,
		GrandTotal: cp.GrandTotal,
	})
}
