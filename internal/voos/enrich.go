package voos

import (
	"context"
	"encoding/json"

	"passagens/pkg/amadeus"
	"passagens/pkg/logging"
)

// Confirmer re-validates an offer's price against the provider.
type Confirmer interface {
	PriceOffer(ctx context.Context, rawOffer json.RawMessage) (*amadeus.ConfirmedPrice, error)
}

// maxConfirmacoes bounds how many offers per search get a live price check.
// The pricing endpoint is rate-limited, so only the top results are worth
// the extra round-trips.
const maxConfirmacoes = 5

// EnrichPrices confirms prices for the first offers in the list, one call at
// a time. A failed confirmation leaves that offer with its estimated price
// and moves on; the search result never fails because pricing did.
func EnrichPrices(ctx context.Context, c Confirmer, voos []Voo) {
	n := len(voos)
	if n > maxConfirmacoes {
		n = maxConfirmacoes
	}

	log := logging.Component("voos")
	for i := 0; i < n; i++ {
		if len(voos[i].OriginalOffer) == 0 {
			continue
		}
		cp, err := c.PriceOffer(ctx, voos[i].OriginalOffer)
		if err != nil {
			log.Warn().Err(err).Str("offer", voos[i].ID).Msg("price confirmation failed, keeping estimate")
			continue
		}
		voos[i].Preco = cp.GrandTotal
		if cp.Currency != "" {
			voos[i].Moeda = cp.Currency
		}
		voos[i].PrecoConfirmado = true
	}
}
