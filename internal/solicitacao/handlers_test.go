package solicitacao

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"passagens/internal/api"
	"passagens/internal/user"
)

// The handlers below run against a zero-value Handlers (nil pool): every
// rejection asserted here must happen before any repository access, or the
// test would panic instead of failing an assertion.

func decisionRequest(u *user.User, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/solicitacoes/abc/aprovar-gerente", strings.NewReader(body))
	if u != nil {
		r = r.WithContext(api.WithUser(r.Context(), u))
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "abc")
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAprovarGerente_EmptyMotivoRejectedBeforePersistence(t *testing.T) {
	h := Handlers{}
	gerente := &user.User{ID: "u1", Email: "maria@empresa.com", Role: user.RoleGerente}

	for _, body := range []string{`{"aprovado":true}`, `{"aprovado":false,"motivo":"   "}`} {
		w := httptest.NewRecorder()
		h.AprovarGerente(w, decisionRequest(gerente, body))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "VALIDATION_FAILED") {
			t.Fatalf("body %s: %s", body, w.Body.String())
		}
	}
}

func TestAprovarGerente_WrongRoleRejectedBeforePersistence(t *testing.T) {
	h := Handlers{}
	for _, role := range []user.Role{user.RoleColaborador, user.RoleDiretor, user.RoleCompras} {
		w := httptest.NewRecorder()
		u := &user.User{ID: "u1", Email: "x@empresa.com", Role: role}
		h.AprovarGerente(w, decisionRequest(u, `{"aprovado":true,"motivo":"ok"}`))
		if w.Code != http.StatusForbidden {
			t.Fatalf("role %s: status = %d, want 403", role, w.Code)
		}
		if !strings.Contains(w.Body.String(), "FORBIDDEN") {
			t.Fatalf("role %s: %s", role, w.Body.String())
		}
	}
}

func TestAprovarGerente_MissingUser(t *testing.T) {
	h := Handlers{}
	w := httptest.NewRecorder()
	h.AprovarGerente(w, decisionRequest(nil, `{"aprovado":true,"motivo":"ok"}`))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func processarRequest(u *user.User, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/solicitacoes/abc/processar-compras", strings.NewReader(body))
	if u != nil {
		r = r.WithContext(api.WithUser(r.Context(), u))
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "abc")
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestProcessarCompras_EmptyTicketRejectedBeforePersistence(t *testing.T) {
	h := Handlers{}
	compras := &user.User{ID: "u2", Email: "ana@empresa.com", Role: user.RoleCompras}

	cases := []string{
		`{"processado":true,"observacoes":""}`,
		`{"processado":true,"observacoes":"  "}`,
		`{"processado":false,"observacoes":"BIL-123"}`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		h.ProcessarCompras(w, processarRequest(compras, body))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "VALIDATION_FAILED") {
			t.Fatalf("body %s: %s", body, w.Body.String())
		}
	}
}

func TestProcessarCompras_WrongRole(t *testing.T) {
	h := Handlers{}
	w := httptest.NewRecorder()
	gerente := &user.User{ID: "u1", Email: "maria@empresa.com", Role: user.RoleGerente}
	h.ProcessarCompras(w, processarRequest(gerente, `{"processado":true,"observacoes":"BIL-123"}`))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestWriteTxError_Mapping(t *testing.T) {
	w := httptest.NewRecorder()
	writeTxError(w, pgx.ErrNoRows)
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "NOT_FOUND") {
		t.Fatalf("ErrNoRows: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	writeTxError(w, fmt.Errorf("connection reset"))
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "INTERNAL") {
		t.Fatalf("db failure: %d %s", w.Code, w.Body.String())
	}

	// The sentinel means the handler already responded inside the
	// transaction; nothing more may be written.
	w = httptest.NewRecorder()
	writeTxError(w, pgx.ErrTxCommitRollback)
	if w.Body.Len() != 0 {
		t.Fatalf("sentinel must not write: %s", w.Body.String())
	}
}
