package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/crypto/bcrypt"

	"passagens/internal/user"
	"passagens/pkg/config"
	"passagens/pkg/db"
	"passagens/pkg/logging"
)

// Seeds one account per role for local testing. All accounts share the same
// dev password.
func main() {
	cfg := config.Load()
	logging.Init(cfg)
	log := logging.Component("seed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db open")
	}
	defer conn.Close()

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "123456"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash seed password")
	}

	users := user.NewRepository(conn)
	seeds := []struct {
		nome  string
		email string
		role  user.Role
	}{
		{"João Silva", "joao@empresa.com", user.RoleColaborador},
		{"Maria Gestora", "maria@empresa.com", user.RoleGerente},
		{"Carlos Diretor", "carlos@empresa.com", user.RoleDiretor},
		{"Ana Compras", "ana@empresa.com", user.RoleCompras},
	}

	for _, s := range seeds {
		u, err := users.Upsert(ctx, s.nome, s.email, s.role, string(hash))
		if err != nil {
			log.Fatal().Err(err).Str("email", s.email).Msg("seed user")
		}
		log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("seeded")
	}
}
