package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"receipt-desk/internal/dto"
	"receipt-desk/pkg/auth"

	"go.uber.org/zap"
)

func TestAuthFlow(t *testing.T) {
	ctx := context.Background()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(newFakeUsers(), jwtManager, zap.NewNop())

	req := &dto.CreateUserRequest{Username: "pat", Email: "Pat@Example.com", Password: "s3cret-pass", Role: "partner"}
	if _, err := svc.CreateUser(ctx, partnerActor, req); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want forbidden, got %v", err)
	}

	user, err := svc.CreateUser(ctx, adminActor, req)
	if err != nil {
		t.Fatal(err)
	}
	if user.Email != "pat@example.com" || user.Role != "partner" {
		t.Fatalf("unexpected user %+v", user)
	}
	if _, err := svc.CreateUser(ctx, adminActor, req); !errors.Is(err, ErrUserExists) {
		t.Fatalf("want user exists, got %v", err)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "pat@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want invalid credentials, got %v", err)
	}

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "PAT@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatal(err)
	}
	claims, err := jwtManager.ValidateTokenOfType(resp.AccessToken, auth.TokenTypeAccess)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Role != "partner" {
		t.Fatalf("role should travel in the token, got %q", claims.Role)
	}

	if _, err := svc.RefreshToken(ctx, resp.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("an access token must not refresh")
	}
	if _, err := svc.RefreshToken(ctx, resp.RefreshToken); err != nil {
		t.Fatal(err)
	}
}
