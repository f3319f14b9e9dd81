package voos

import (
	"encoding/json"
	"testing"

	"passagens/pkg/amadeus"
)

func TestFromOffer_RoundTrip(t *testing.T) {
	raw := json.RawMessage(`{"id":"7"}`)
	o := amadeus.Offer{
		ID:         "7",
		Validating: []string{"LA"},
		Price:      amadeus.Price{GrandTotal: "1234.56", Total: "1200.00", Currency: "BRL"},
		Itineraries: []amadeus.Itinerary{
			{
				Duration: "PT4H30M",
				Segments: []amadeus.Segment{
					{
						Departure: amadeus.Endpoint{IATACode: "GRU", At: "2026-09-10T08:00:00"},
						Arrival:   amadeus.Endpoint{IATACode: "BSB", At: "2026-09-10T10:00:00"},
						Carrier:   "LA", Number: "3302", Duration: "PT2H",
					},
					{
						Departure: amadeus.Endpoint{IATACode: "BSB", At: "2026-09-10T11:00:00"},
						Arrival:   amadeus.Endpoint{IATACode: "REC", At: "2026-09-10T13:30:00"},
						Carrier:   "LA", Number: "3410", Duration: "PT2H30M",
					},
				},
			},
			{
				Duration: "PT3H15M",
				Segments: []amadeus.Segment{
					{
						Departure: amadeus.Endpoint{IATACode: "REC", At: "2026-09-15T18:00:00"},
						Arrival:   amadeus.Endpoint{IATACode: "GRU", At: "2026-09-15T21:15:00"},
						Carrier:   "LA", Number: "3411", Duration: "PT3H15M",
					},
				},
			},
		},
		Raw: raw,
	}

	v := FromOffer(o)

	if v.ID != "7" || v.Companhia != "LA" {
		t.Fatalf("id/companhia: %+v", v)
	}
	if v.Preco != "1234.56" || v.Moeda != "BRL" {
		t.Fatalf("preco: %s %s", v.Preco, v.Moeda)
	}
	if v.Origem != "GRU" || v.Destino != "REC" {
		t.Fatalf("rota: %s -> %s", v.Origem, v.Destino)
	}
	if v.DataIda != "2026-09-10T08:00:00" || v.DataVolta != "2026-09-15T18:00:00" {
		t.Fatalf("datas: %s / %s", v.DataIda, v.DataVolta)
	}
	if v.EscalasIda != 1 || v.EscalasVolta != 0 {
		t.Fatalf("escalas: %d / %d", v.EscalasIda, v.EscalasVolta)
	}
	if v.DuracaoIda != "PT4H30M" || v.DuracaoVolta != "PT3H15M" {
		t.Fatalf("duracoes: %s / %s", v.DuracaoIda, v.DuracaoVolta)
	}
	if v.Detalhes == nil || len(v.Detalhes.Ida) != 2 || len(v.Detalhes.Volta) != 1 {
		t.Fatalf("detalhes: %+v", v.Detalhes)
	}
	if v.Detalhes.Ida[0].Voo != "LA3302" {
		t.Fatalf("numero do voo: %s", v.Detalhes.Ida[0].Voo)
	}
	if string(v.OriginalOffer) != string(raw) {
		t.Fatalf("raw offer must round-trip")
	}
	if v.PrecoConfirmado {
		t.Fatalf("search results start as estimates")
	}
}

func TestFromOffer_FallsBackToTotalAndSegmentCarrier(t *testing.T) {
	o := amadeus.Offer{
		ID:    "9",
		Price: amadeus.Price{Total: "800.00", Currency: "BRL"},
		Itineraries: []amadeus.Itinerary{
			{Segments: []amadeus.Segment{{
				Departure: amadeus.Endpoint{IATACode: "GIG", At: "2026-10-01T07:00:00"},
				Arrival:   amadeus.Endpoint{IATACode: "SSA", At: "2026-10-01T09:00:00"},
				Carrier:   "G3", Number: "1402",
			}}},
		},
	}

	v := FromOffer(o)
	if v.Preco != "800.00" {
		t.Fatalf("preco fallback: %s", v.Preco)
	}
	if v.Companhia != "G3" {
		t.Fatalf("companhia fallback: %s", v.Companhia)
	}
	if v.DataVolta != "" || v.DuracaoVolta != "" {
		t.Fatalf("one-way offer must have no return leg")
	}
}
