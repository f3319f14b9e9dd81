package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"passagens/internal/user"
	"passagens/pkg/config"
	"passagens/pkg/logging"
)

type Handlers struct {
	Cfg   config.Config
	Users *user.Repository
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool       `json:"success"`
	User    *user.User `json:"user,omitempty"`
	Token   string     `json:"token,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Login authenticates by email/password and returns the user plus a session
// token. The response keeps the {success, user, message} contract the
// frontend checks on, so failures carry success=false alongside the status.
func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLogin(w, http.StatusBadRequest, LoginResponse{Success: false, Message: "Requisição inválida"})
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		writeLogin(w, http.StatusBadRequest, LoginResponse{Success: false, Message: "Informe email e senha"})
		return
	}

	u, err := h.Users.FindByEmail(r.Context(), email)
	if err != nil {
		writeLogin(w, http.StatusUnauthorized, LoginResponse{Success: false, Message: "Credenciais inválidas"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(req.Password)); err != nil {
		writeLogin(w, http.StatusUnauthorized, LoginResponse{Success: false, Message: "Credenciais inválidas"})
		return
	}

	token, err := IssueToken(u, h.Cfg.Auth.JWTSecret, h.Cfg.Auth.TokenTTL, time.Now())
	if err != nil {
		logging.Component("auth").Error().Err(err).Msg("issue session token")
		writeLogin(w, http.StatusInternalServerError, LoginResponse{Success: false, Message: "Erro interno"})
		return
	}

	logging.Component("auth").Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("login")
	writeLogin(w, http.StatusOK, LoginResponse{Success: true, User: u, Token: token})
}

func writeLogin(w http.ResponseWriter, status int, resp LoginResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
