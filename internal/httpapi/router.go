package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"passagens/internal/api"
	"passagens/internal/auth"
	"passagens/internal/estatisticas"
	"passagens/internal/historico"
	"passagens/internal/solicitacao"
	"passagens/internal/user"
	"passagens/internal/voos"
	"passagens/pkg/amadeus"
	"passagens/pkg/config"
)

type Dependencies struct {
	Cfg config.Config
	DB  *pgxpool.Pool
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	usersRepo := user.NewRepository(deps.DB)
	authHandlers := auth.Handlers{
		Cfg:   deps.Cfg,
		Users: usersRepo,
	}
	solicitacoesRepo := solicitacao.NewRepository(deps.DB)
	historicoRepo := historico.NewRepository(deps.DB)
	solicitacaoHandlers := solicitacao.Handlers{
		DB:           deps.DB,
		Solicitacoes: solicitacoesRepo,
		Historico:    historicoRepo,
	}
	estatisticasHandlers := estatisticas.Handlers{Solicitacoes: solicitacoesRepo}
	voosHandlers := voos.Handlers{Amadeus: amadeus.NewClient(deps.Cfg.Amadeus)}

	r.Route("/api", func(r chi.Router) {
		// The frontend runs on a separate dev server origin.
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-User-Email"},
			MaxAgeSeconds:  600,
		}))

		r.Post("/login", authHandlers.Login)

		// Session-scoped APIs
		r.Group(func(r chi.Router) {
			// Production: JWT session auth.
			// Dev: falls back to X-User-Email if Authorization is missing.
			r.Use(api.SessionAuth(deps.Cfg, usersRepo))

			r.Get("/solicitacoes", solicitacaoHandlers.List)
			r.Post("/solicitacoes", solicitacaoHandlers.Create)
			r.Get("/solicitacoes/{id}", solicitacaoHandlers.Get)
			r.Post("/solicitacoes/{id}/aprovar-gerente", solicitacaoHandlers.AprovarGerente)
			r.Post("/solicitacoes/{id}/aprovar-diretor", solicitacaoHandlers.AprovarDiretor)
			r.Post("/solicitacoes/{id}/processar-compras", solicitacaoHandlers.ProcessarCompras)

			r.Get("/estatisticas", estatisticasHandlers.Dashboard)

			r.Get("/voos/buscar", voosHandlers.Buscar)
			r.Post("/voos/confirmar-preco", voosHandlers.ConfirmarPreco)
		})
	})

	return r
}
