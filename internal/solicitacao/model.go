package solicitacao

import (
	"time"

	"passagens/internal/historico"
	"passagens/internal/voos"
)

// Aprovacao is one approval-tier decision.
type Aprovacao struct {
	Aprovado bool      `json:"aprovado"`
	Motivo   string    `json:"motivo"`
	Data     time.Time `json:"data"`
}

// ProcessamentoCompras records fulfillment by the purchasing team.
type ProcessamentoCompras struct {
	Bilhete     string    `json:"bilhete,omitempty"`
	Observacoes string    `json:"observacoes,omitempty"`
	Data        time.Time `json:"data"`
}

type Solicitacao struct {
	ID string `json:"id"`

	SolicitanteID    string `json:"solicitanteId"`
	SolicitanteNome  string `json:"solicitanteNome"`
	SolicitanteEmail string `json:"solicitanteEmail,omitempty"`

	Origem        string `json:"origem"`
	Destino       string `json:"destino"`
	DataIda       string `json:"dataIda"`
	DataVolta     string `json:"dataVolta,omitempty"`
	Justificativa string `json:"justificativa"`

	// Intake-form details. All optional; the approval flow does not depend
	// on them.
	TipoServico   string `json:"tipoServico,omitempty"`
	NomeCompleto  string `json:"nomeCompleto,omitempty"`
	Empresa       string `json:"empresa,omitempty"`
	Gestor        string `json:"gestor,omitempty"`
	NomeViajantes string `json:"nomeViajantes,omitempty"`
	Projeto       string `json:"projeto,omitempty"`
	MotivoViagem  string `json:"motivoViagem,omitempty"`
	Urgencia      string `json:"urgencia,omitempty"`
	PaisOrigem    string `json:"paisOrigem,omitempty"`
	PaisDestino   string `json:"paisDestino,omitempty"`
	Flexibilidade string `json:"flexibilidade,omitempty"`
	Departamento  string `json:"departamento,omitempty"`

	VooEscolhido         *voos.Voo             `json:"vooEscolhido,omitempty"`
	AprovacaoGerente     *Aprovacao            `json:"aprovacaoGerente,omitempty"`
	AprovacaoDiretor     *Aprovacao            `json:"aprovacaoDiretor,omitempty"`
	ProcessamentoCompras *ProcessamentoCompras `json:"processamentoCompras,omitempty"`

	Status Status `json:"status"`

	Historico []historico.Entry `json:"historico,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
