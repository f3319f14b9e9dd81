package voos

import (
	"passagens/pkg/amadeus"
)

// FromOffer flattens a provider offer into the client-facing shape. The
// first itinerary is the outbound leg, the second (if any) the return.
func FromOffer(o amadeus.Offer) Voo {
	v := Voo{
		ID:            o.ID,
		Preco:         o.Price.GrandTotal,
		Moeda:         o.Price.Currency,
		OriginalOffer: o.Raw,
	}
	if v.Preco == "" {
		v.Preco = o.Price.Total
	}

	if len(o.Validating) > 0 {
		v.Companhia = o.Validating[0]
	}

	if len(o.Itineraries) > 0 {
		ida := o.Itineraries[0]
		v.DuracaoIda = ida.Duration
		if n := len(ida.Segments); n > 0 {
			v.Origem = ida.Segments[0].Departure.IATACode
			v.Destino = ida.Segments[n-1].Arrival.IATACode
			v.DataIda = ida.Segments[0].Departure.At
			v.EscalasIda = n - 1
			if v.Companhia == "" {
				v.Companhia = ida.Segments[0].Carrier
			}
		}
		v.Detalhes = &Detalhes{Ida: mapSegments(ida.Segments)}
	}

	if len(o.Itineraries) > 1 {
		volta := o.Itineraries[1]
		v.DuracaoVolta = volta.Duration
		if n := len(volta.Segments); n > 0 {
			v.DataVolta = volta.Segments[0].Departure.At
			v.EscalasVolta = n - 1
		}
		v.Detalhes.Volta = mapSegments(volta.Segments)
	}

	return v
}

func mapSegments(segs []amadeus.Segment) []Segmento {
	out := make([]Segmento, 0, len(segs))
	for _, s := range segs {
		out = append(out, Segmento{
			Origem:  s.Departure.IATACode,
			Destino: s.Arrival.IATACode,
			Partida: s.Departure.At,
			Chegada: s.Arrival.At,
			Voo:     s.Carrier + s.Number,
			Duracao: s.Duration,
		})
	}
	return out
}
