package solicitacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"passagens/internal/api"
	"passagens/internal/historico"
	"passagens/internal/user"
	"passagens/internal/voos"
	"passagens/pkg/db"
	"passagens/pkg/logging"
)

var validate = validator.New()

type Handlers struct {
	DB           *pgxpool.Pool
	Solicitacoes *Repository
	Historico    *historico.Repository
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Solicitacoes.List(r.Context())
	if err != nil {
		logging.Component("solicitacao").Error().Err(err).Msg("list solicitacoes")
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		st, err := ParseStatus(raw)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status filter")
			return
		}
		filtered := items[:0:0]
		for _, s := range items {
			if s.Status == st {
				filtered = append(filtered, s)
			}
		}
		items = filtered
	}

	if busca := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("busca"))); busca != "" {
		filtered := items[:0:0]
		for _, s := range items {
			if strings.Contains(strings.ToLower(s.SolicitanteNome), busca) ||
				strings.Contains(strings.ToLower(s.Origem), busca) ||
				strings.Contains(strings.ToLower(s.Destino), busca) {
				filtered = append(filtered, s)
			}
		}
		items = filtered
	}

	if items == nil {
		items = []Solicitacao{}
	}
	api.WriteJSON(w, http.StatusOK, items)
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	s, err := h.Solicitacoes.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "solicitacao not found")
		return
	}

	hist, err := h.Historico.ListBySolicitacao(r.Context(), s.ID)
	if err != nil {
		logging.Component("solicitacao").Error().Err(err).Str("id", s.ID).Msg("load historico")
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	s.Historico = hist

	api.WriteJSON(w, http.StatusOK, s)
}

type CreateRequest struct {
	Origem        string `json:"origem" validate:"required"`
	Destino       string `json:"destino" validate:"required"`
	DataIda       string `json:"dataIda" validate:"required"`
	DataVolta     string `json:"dataVolta"`
	Justificativa string `json:"justificativa" validate:"required"`

	TipoServico   string `json:"tipoServico"`
	NomeCompleto  string `json:"nomeCompleto"`
	Empresa       string `json:"empresa"`
	Gestor        string `json:"gestor"`
	NomeViajantes string `json:"nomeViajantes"`
	Projeto       string `json:"projeto"`
	MotivoViagem  string `json:"motivoViagem"`
	Urgencia      string `json:"urgencia"`
	PaisOrigem    string `json:"paisOrigem"`
	PaisDestino   string `json:"paisDestino"`
	Flexibilidade string `json:"flexibilidade"`
	Departamento  string `json:"departamento"`

	VooEscolhido *voos.Voo `json:"vooEscolhido"`
}

// Create registers a new request for the logged-in user. The requester
// identity always comes from the session, never from the body.
func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing user identity")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "origem, destino, dataIda and justificativa are required")
		return
	}

	now := time.Now()
	s := &Solicitacao{
		ID:               uuid.NewString(),
		SolicitanteID:    u.ID,
		SolicitanteNome:  u.Nome,
		SolicitanteEmail: u.Email,

		Origem:        strings.TrimSpace(req.Origem),
		Destino:       strings.TrimSpace(req.Destino),
		DataIda:       req.DataIda,
		DataVolta:     req.DataVolta,
		Justificativa: strings.TrimSpace(req.Justificativa),

		TipoServico:   req.TipoServico,
		NomeCompleto:  req.NomeCompleto,
		Empresa:       req.Empresa,
		Gestor:        req.Gestor,
		NomeViajantes: req.NomeViajantes,
		Projeto:       req.Projeto,
		MotivoViagem:  req.MotivoViagem,
		Urgencia:      req.Urgencia,
		PaisOrigem:    req.PaisOrigem,
		PaisDestino:   req.PaisDestino,
		Flexibilidade: req.Flexibilidade,
		Departamento:  req.Departamento,

		VooEscolhido: req.VooEscolhido,

		Status:    StatusPendenteGerente,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		if err := Insert(r.Context(), tx, s); err != nil {
			return err
		}
		return historico.Insert(r.Context(), tx, s.ID, "Solicitação criada", "", now)
	})
	if err != nil {
		logging.Component("solicitacao").Error().Err(err).Msg("create solicitacao")
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	logging.Component("solicitacao").Info().Str("id", s.ID).Str("solicitante", u.Email).Msg("solicitacao created")
	api.WriteJSON(w, http.StatusCreated, s)
}

type DecisaoRequest struct {
	Aprovado bool   `json:"aprovado"`
	Motivo   string `json:"motivo"`
}

func (h Handlers) AprovarGerente(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, StatusPendenteGerente)
}

func (h Handlers) AprovarDiretor(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, StatusPendenteDiretor)
}

// decide applies an approval-tier decision. Checks run in order: role gate,
// non-empty motivo, then transition legality under row lock. The first two
// fail before any database write.
func (h Handlers) decide(w http.ResponseWriter, r *http.Request, stage Status) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing user identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	if !CanAct(u.Role, stage) {
		api.WriteError(w, http.StatusForbidden, "FORBIDDEN", "role not allowed to act on this stage")
		return
	}

	var req DecisaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	req.Motivo = strings.TrimSpace(req.Motivo)
	if req.Motivo == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "motivo is required")
		return
	}

	now := time.Now()
	next := StatusRejeitada
	if req.Aprovado {
		if stage == StatusPendenteGerente {
			next = StatusPendenteDiretor
		} else {
			next = StatusPendenteCompras
		}
	}

	var updated *Solicitacao
	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		s, err := GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}

		if s.Status != stage || !CanTransition(s.Status, next) {
			api.WriteError(w, http.StatusConflict, "INVALID_STATE_TRANSITION", "invalid state transition")
			return pgx.ErrTxCommitRollback
		}

		a := Aprovacao{Aprovado: req.Aprovado, Motivo: req.Motivo, Data: now}
		if stage == StatusPendenteGerente {
			if err := SetAprovacaoGerente(r.Context(), tx, s.ID, a, next); err != nil {
				return err
			}
			s.AprovacaoGerente = &a
		} else {
			if err := SetAprovacaoDiretor(r.Context(), tx, s.ID, a, next); err != nil {
				return err
			}
			s.AprovacaoDiretor = &a
		}

		if err := historico.Insert(r.Context(), tx, s.ID, decisaoAcao(stage, req.Aprovado), req.Motivo, now); err != nil {
			return err
		}

		s.Status = next
		s.UpdatedAt = now
		updated = s
		return nil
	})

	if err != nil {
		writeTxError(w, err)
		return
	}

	logging.Component("solicitacao").Info().
		Str("id", updated.ID).
		Str("actor", u.Email).
		Str("status", string(updated.Status)).
		Msg("decisao applied")
	api.WriteJSON(w, http.StatusOK, updated)
}

// writeTxError maps a failed transition transaction to a response. The
// conflict sentinel means a response was already written inside the
// transaction; a missing row is 404; anything else is a real failure.
func writeTxError(w http.ResponseWriter, err error) {
	if err == pgx.ErrTxCommitRollback {
		return
	}
	if errors.Is(err, pgx.ErrNoRows) {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "solicitacao not found")
		return
	}
	logging.Component("solicitacao").Error().Err(err).Msg("transition failed")
	api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}

func decisaoAcao(stage Status, aprovado bool) string {
	switch {
	case stage == StatusPendenteGerente && aprovado:
		return "Aprovada pelo gerente"
	case stage == StatusPendenteGerente:
		return "Rejeitada pelo gerente"
	case aprovado:
		return "Aprovada pelo diretor"
	default:
		return "Rejeitada pelo diretor"
	}
}

type ProcessarRequest struct {
	Processado  bool   `json:"processado"`
	Observacoes string `json:"observacoes"`
}

// ProcessarCompras records fulfillment: the purchasing team supplies the
// issued ticket reference and the request reaches its terminal state.
func (h Handlers) ProcessarCompras(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing user identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	if u.Role != user.RoleCompras {
		api.WriteError(w, http.StatusForbidden, "FORBIDDEN", "role not allowed to act on this stage")
		return
	}

	var req ProcessarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	req.Observacoes = strings.TrimSpace(req.Observacoes)
	if !req.Processado || req.Observacoes == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "bilhete/observacoes is required")
		return
	}

	now := time.Now()

	var updated *Solicitacao
	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		s, err := GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}

		if !CanTransition(s.Status, StatusProcessada) {
			api.WriteError(w, http.StatusConflict, "INVALID_STATE_TRANSITION", "invalid state transition")
			return pgx.ErrTxCommitRollback
		}

		p := ProcessamentoCompras{Bilhete: req.Observacoes, Observacoes: req.Observacoes, Data: now}
		if err := SetProcessamento(r.Context(), tx, s.ID, p); err != nil {
			return err
		}
		if err := historico.Insert(r.Context(), tx, s.ID, "Processada pelo setor de compras", req.Observacoes, now); err != nil {
			return err
		}

		s.ProcessamentoCompras = &p
		s.Status = StatusProcessada
		s.UpdatedAt = now
		updated = s
		return nil
	})

	if err != nil {
		writeTxError(w, err)
		return
	}

	logging.Component("solicitacao").Info().
		Str("id", updated.ID).
		Str("actor", u.Email).
		Msg("compras processed")
	api.WriteJSON(w, http.StatusOK, updated)
}
