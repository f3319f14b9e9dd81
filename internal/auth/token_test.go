package auth

import (
	"testing"
	"time"

	"passagens/internal/user"
)

func TestIssueAndVerifyToken(t *testing.T) {
	now := time.Unix(1700000000, 0)
	u := &user.User{
		ID:    "u-1",
		Nome:  "Maria Silva",
		Email: "maria@empresa.com",
		Role:  user.RoleGerente,
	}

	s, err := IssueToken(u, "test_secret", 10*time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := VerifyToken(s, "test_secret", now)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "u-1" {
		t.Fatalf("subject mismatch: %q", claims.Subject)
	}
	if claims.Role != "gerente" {
		t.Fatalf("role mismatch: %q", claims.Role)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	now := time.Unix(1700000000, 0)
	u := &user.User{ID: "u-1", Email: "x@empresa.com", Role: user.RoleCompras}

	s, err := IssueToken(u, "test_secret", time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := VerifyToken(s, "test_secret", now.Add(2*time.Minute)); err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)
	u := &user.User{ID: "u-1", Email: "x@empresa.com", Role: user.RoleDiretor}

	s, err := IssueToken(u, "test_secret", time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := VerifyToken(s, "other_secret", now); err == nil {
		t.Fatalf("expected signature error")
	}
}
