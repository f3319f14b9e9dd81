package solicitacao

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const columns = `
id, solicitante_id, solicitante_nome, COALESCE(solicitante_email, ''),
origem, destino, data_ida, COALESCE(data_volta, ''), justificativa,
COALESCE(tipo_servico, ''), COALESCE(nome_completo, ''), COALESCE(empresa, ''),
COALESCE(gestor, ''), COALESCE(nome_viajantes, ''), COALESCE(projeto, ''),
COALESCE(motivo_viagem, ''), COALESCE(urgencia, ''), COALESCE(pais_origem, ''),
COALESCE(pais_destino, ''), COALESCE(flexibilidade, ''), COALESCE(departamento, ''),
voo_escolhido, aprovacao_gerente, aprovacao_diretor, processamento_compras,
status, created_at, updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanSolicitacao(row scanner) (*Solicitacao, error) {
	var s Solicitacao
	var rawStatus string
	var vooJSON, gerenteJSON, diretorJSON, comprasJSON []byte

	if err := row.Scan(
		&s.ID, &s.SolicitanteID, &s.SolicitanteNome, &s.SolicitanteEmail,
		&s.Origem, &s.Destino, &s.DataIda, &s.DataVolta, &s.Justificativa,
		&s.TipoServico, &s.NomeCompleto, &s.Empresa,
		&s.Gestor, &s.NomeViajantes, &s.Projeto,
		&s.MotivoViagem, &s.Urgencia, &s.PaisOrigem,
		&s.PaisDestino, &s.Flexibilidade, &s.Departamento,
		&vooJSON, &gerenteJSON, &diretorJSON, &comprasJSON,
		&rawStatus, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	// Stored rows may still carry legacy status spellings; normalize on read.
	st, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("solicitacao %s: %w", s.ID, err)
	}
	s.Status = st

	if len(vooJSON) > 0 {
		if err := json.Unmarshal(vooJSON, &s.VooEscolhido); err != nil {
			return nil, fmt.Errorf("solicitacao %s: decode voo_escolhido: %w", s.ID, err)
		}
	}
	if len(gerenteJSON) > 0 {
		if err := json.Unmarshal(gerenteJSON, &s.AprovacaoGerente); err != nil {
			return nil, fmt.Errorf("solicitacao %s: decode aprovacao_gerente: %w", s.ID, err)
		}
	}
	if len(diretorJSON) > 0 {
		if err := json.Unmarshal(diretorJSON, &s.AprovacaoDiretor); err != nil {
			return nil, fmt.Errorf("solicitacao %s: decode aprovacao_diretor: %w", s.ID, err)
		}
	}
	if len(comprasJSON) > 0 {
		if err := json.Unmarshal(comprasJSON, &s.ProcessamentoCompras); err != nil {
			return nil, fmt.Errorf("solicitacao %s: decode processamento_compras: %w", s.ID, err)
		}
	}

	return &s, nil
}

func (r *Repository) List(ctx context.Context) ([]Solicitacao, error) {
	q := `SELECT ` + columns + ` FROM solicitacoes ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Solicitacao
	for rows.Next() {
		s, err := scanSolicitacao(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Solicitacao, error) {
	q := `SELECT ` + columns + ` FROM solicitacoes WHERE id = $1`
	return scanSolicitacao(r.db.QueryRow(ctx, q, id))
}

func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Solicitacao, error) {
	q := `SELECT ` + columns + ` FROM solicitacoes WHERE id = $1 FOR UPDATE`
	return scanSolicitacao(tx.QueryRow(ctx, q, id))
}

func Insert(ctx context.Context, tx pgx.Tx, s *Solicitacao) error {
	var vooJSON []byte
	if s.VooEscolhido != nil {
		b, err := json.Marshal(s.VooEscolhido)
		if err != nil {
			return err
		}
		vooJSON = b
	}

	const q = `
INSERT INTO solicitacoes (
  id, solicitante_id, solicitante_nome, solicitante_email,
  origem, destino, data_ida, data_volta, justificativa,
  tipo_servico, nome_completo, empresa, gestor, nome_viajantes, projeto,
  motivo_viagem, urgencia, pais_origem, pais_destino, flexibilidade, departamento,
  voo_escolhido, status
) VALUES (
  $1, $2, $3, NULLIF($4, ''),
  $5, $6, $7, NULLIF($8, ''), $9,
  NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''), NULLIF($14, ''), NULLIF($15, ''),
  NULLIF($16, ''), NULLIF($17, ''), NULLIF($18, ''), NULLIF($19, ''), NULLIF($20, ''), NULLIF($21, ''),
  $22, $23
)
`
	_, err := tx.Exec(ctx, q,
		s.ID, s.SolicitanteID, s.SolicitanteNome, s.SolicitanteEmail,
		s.Origem, s.Destino, s.DataIda, s.DataVolta, s.Justificativa,
		s.TipoServico, s.NomeCompleto, s.Empresa, s.Gestor, s.NomeViajantes, s.Projeto,
		s.MotivoViagem, s.Urgencia, s.PaisOrigem, s.PaisDestino, s.Flexibilidade, s.Departamento,
		vooJSON, string(s.Status),
	)
	return err
}

func SetAprovacaoGerente(ctx context.Context, tx pgx.Tx, id string, a Aprovacao, next Status) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	const q = `
UPDATE solicitacoes
SET aprovacao_gerente = $1, status = $2, updated_at = NOW()
WHERE id = $3
`
	_, err = tx.Exec(ctx, q, b, string(next), id)
	return err
}

func SetAprovacaoDiretor(ctx context.Context, tx pgx.Tx, id string, a Aprovacao, next Status) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	const q = `
UPDATE solicitacoes
SET aprovacao_diretor = $1, status = $2, updated_at = NOW()
WHERE id = $3
`
	_, err = tx.Exec(ctx, q, b, string(next), id)
	return err
}

func SetProcessamento(ctx context.Context, tx pgx.Tx, id string, p ProcessamentoCompras) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	const q = `
UPDATE solicitacoes
SET processamento_compras = $1, status = $2, updated_at = NOW()
WHERE id = $3
`
	_, err = tx.Exec(ctx, q, b, string(StatusProcessada), id)
	return err
}
