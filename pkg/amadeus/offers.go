package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Offer carries the fields we map into the client-facing shape plus the raw
// provider payload, which must be echoed back verbatim on price confirmation.
type Offer struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
	Validating  []string    `json:"validatingAirlineCodes"`

	Raw json.RawMessage `json:"-"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`
	Carrier   string   `json:"carrierCode"`
	Number    string   `json:"number"`
	Duration  string   `json:"duration"`
}

type Endpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type Price struct {
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}

type SearchParams struct {
	Origem    string
	Destino   string
	DataIda   string
	DataVolta string
	Adults    int
	Max       int
}

type searchResponse struct {
	Data []json.RawMessage `json:"data"`
}

// SearchOffers runs a flight-offer search. Each returned Offer keeps the raw
// provider document in Raw.
func (c *Client) SearchOffers(ctx context.Context, p SearchParams) ([]Offer, error) {
	if p.Origem == "" || p.Destino == "" || p.DataIda == "" {
		return nil, fmt.Errorf("origem, destino and dataIda are required")
	}
	if p.Adults <= 0 {
		p.Adults = 1
	}
	if p.Max <= 0 {
		p.Max = 10
	}

	q := url.Values{}
	q.Set("originLocationCode", p.Origem)
	q.Set("destinationLocationCode", p.Destino)
	q.Set("departureDate", p.DataIda)
	if p.DataVolta != "" {
		q.Set("returnDate", p.DataVolta)
	}
	q.Set("adults", strconv.Itoa(p.Adults))
	q.Set("max", strconv.Itoa(p.Max))
	if c.Currency != "" {
		q.Set("currencyCode", c.Currency)
	}

	var resp searchResponse
	if _, err := c.doJSON(ctx, http.MethodGet, "/v2/shopping/flight-offers", q, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]Offer, 0, len(resp.Data))
	for _, raw := range resp.Data {
		var o Offer
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, fmt.Errorf("decode flight offer failed: %w", err)
		}
		o.Raw = raw
		out = append(out, o)
	}
	return out, nil
}

// ConfirmedPrice is the live price returned by the pricing endpoint.
type ConfirmedPrice struct {
	GrandTotal string
	Currency   string
}

type pricingRequest struct {
	Data pricingRequestData `json:"data"`
}

type pricingRequestData struct {
	Type         string            `json:"type"`
	FlightOffers []json.RawMessage `json:"flightOffers"`
}

type pricingResponse struct {
	Data struct {
		FlightOffers []struct {
			Price Price `json:"price"`
		} `json:"flightOffers"`
	} `json:"data"`
}

// PriceOffer confirms the live price for a single raw offer document.
func (c *Client) PriceOffer(ctx context.Context, rawOffer json.RawMessage) (*ConfirmedPrice, error) {
	if len(rawOffer) == 0 {
		return nil, fmt.Errorf("missing flight offer")
	}

	req := pricingRequest{
		Data: pricingRequestData{
			Type:         "flight-offers-pricing",
			FlightOffers: []json.RawMessage{rawOffer},
		},
	}

	var resp pricingResponse
	if _, err := c.doJSON(ctx, http.MethodPost, "/v1/shopping/flight-offers/pricing", nil, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data.FlightOffers) == 0 {
		return nil, fmt.Errorf("pricing response has no offers")
	}

	p := resp.Data.FlightOffers[0].Price
	total := p.GrandTotal
	if total == "" {
		total = p.Total
	}
	if total == "" {
		return nil, fmt.Errorf("pricing response has no total")
	}
	return &ConfirmedPrice{GrandTotal: total, Currency: p.Currency}, nil
}
