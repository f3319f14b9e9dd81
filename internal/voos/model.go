package voos

import "encoding/json"

// Voo is the client-facing flight offer shape. Preco is a decimal string as
// returned by the provider; consumers parse it when they need arithmetic.
type Voo struct {
	ID        string `json:"id"`
	Companhia string `json:"companhia"`
	Preco     string `json:"preco"`
	Moeda     string `json:"moeda"`

	Origem    string `json:"origem"`
	Destino   string `json:"destino"`
	DataIda   string `json:"dataIda"`
	DataVolta string `json:"dataVolta,omitempty"`

	DuracaoIda   string `json:"duracaoIda,omitempty"`
	DuracaoVolta string `json:"duracaoVolta,omitempty"`
	EscalasIda   int    `json:"escalasIda"`
	EscalasVolta int    `json:"escalasVolta,omitempty"`

	Detalhes *Detalhes `json:"detalhes,omitempty"`

	// PrecoConfirmado marks offers whose price was re-validated against the
	// provider; everything else is an estimate from the search response.
	PrecoConfirmado bool `json:"precoConfirmado"`

	// OriginalOffer is the raw provider document, echoed back on
	// price-confirmation calls.
	OriginalOffer json.RawMessage `json:"_originalOffer,omitempty"`
}

type Detalhes struct {
	Ida   []Segmento `json:"ida,omitempty"`
	Volta []Segmento `json:"volta,omitempty"`
}

type Segmento struct {
	Origem  string `json:"origem"`
	Destino string `json:"destino"`
	Partida string `json:"partida"`
	Chegada string `json:"chegada"`
	Voo     string `json:"voo"`
	Duracao string `json:"duracao"`
}
