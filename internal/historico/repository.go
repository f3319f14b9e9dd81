// Package historico is the append-only audit trail of a travel request.
// Entries are only ever inserted; rows are returned ordered by occurrence.
package historico

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	Acao   string    `json:"acao"`
	Motivo string    `json:"motivo,omitempty"`
	Data   time.Time `json:"data"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func Insert(ctx context.Context, tx pgx.Tx, solicitacaoID, acao, motivo string, data time.Time) error {
	const q = `
INSERT INTO historico (solicitacao_id, acao, motivo, data)
VALUES ($1, $2, NULLIF($3, ''), $4)
`
	_, err := tx.Exec(ctx, q, solicitacaoID, acao, motivo, data)
	return err
}

func (r *Repository) ListBySolicitacao(ctx context.Context, solicitacaoID string) ([]Entry, error) {
	const q = `
SELECT acao, COALESCE(motivo, ''), data
FROM historico
WHERE solicitacao_id = $1
ORDER BY data ASC, seq ASC
`
	rows, err := r.db.Query(ctx, q, solicitacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Acao, &e.Motivo, &e.Data); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
