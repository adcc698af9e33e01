package auth

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("u1", "alice", "alice@example.com", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.ValidateTokenOfType(token, TokenTypeAccess)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken("u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.ValidateTokenOfType(token, TokenTypeAccess); err == nil {
		t.Fatal("expected refresh token to be rejected as access token")
	}
	if _, err := m.ValidateTokenOfType(token, TokenTypeRefresh); err != nil {
		t.Fatalf("refresh validate: %v", err)
	}
}

func TestTokenSignedWithOtherKey(t *testing.T) {
	issuer := NewJWTManager("one", time.Hour, time.Hour)
	verifier := NewJWTManager("two", time.Hour, time.Hour)

	token, _ := issuer.GenerateToken("u1", "", "", "partner")
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected signature mismatch")
	}
}

func TestExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, time.Hour)

	token, _ := m.GenerateToken("u1", "", "", "partner")
	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPasswordHash("hunter2", hash) {
		t.Fatal("expected password to match")
	}
	if CheckPasswordHash("hunter3", hash) {
		t.Fatal("expected wrong password to fail")
	}
}
