package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*User, error) {
	u := &User{}
	var role string
	if err := row.Scan(
		&u.ID, &u.Nome, &u.Email, &role, &u.SenhaHash, &u.CreatedAt,
	); err != nil {
		return nil, err
	}

	// A row with a role outside the enum must not produce a usable session.
	r, err := ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", u.ID, err)
	}
	u.Role = r
	return u, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const q = `
SELECT id, nome, email, role, senha_hash, created_at
FROM usuarios
WHERE LOWER(email) = LOWER($1)
`
	return scanUser(r.db.QueryRow(ctx, q, email))
}

func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	const q = `
SELECT id, nome, email, role, senha_hash, created_at
FROM usuarios
WHERE id = $1
`
	return scanUser(r.db.QueryRow(ctx, q, id))
}

// Upsert registers a user keyed by email. Used by the dev seeder.
func (r *Repository) Upsert(ctx context.Context, nome, email string, role Role, senhaHash string) (*User, error) {
	const q = `
INSERT INTO usuarios (id, nome, email, role, senha_hash)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO UPDATE SET
  nome = EXCLUDED.nome,
  role = EXCLUDED.role,
  senha_hash = EXCLUDED.senha_hash
RETURNING id, nome, email, role, senha_hash, created_at
`
	return scanUser(r.db.QueryRow(ctx, q, uuid.NewString(), nome, email, string(role), senhaHash))
}
