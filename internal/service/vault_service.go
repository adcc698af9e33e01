package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"receipt-desk/internal/models"
	"receipt-desk/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const stripeService = "stripe"

type NewCredentialInput struct {
	ServiceName string
	Username    string
	Secret      string
	Notes       string
}

// VaultService keeps shared service credentials. Secrets are stored as given.
type VaultService struct {
	credentials CredentialStore
	logger      *zap.Logger
}

func NewVaultService(credentials CredentialStore, logger *zap.Logger) *VaultService {
	return &VaultService{
		credentials: credentials,
		logger:      logger,
	}
}

func (s *VaultService) List(ctx context.Context, actor Actor, service string) ([]*models.Credential, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.list(ctx, strings.TrimSpace(service))
}

// ListStripe is open to every signed-in user.
func (s *VaultService) ListStripe(ctx context.Context) ([]*models.Credential, error) {
	return s.list(ctx, stripeService)
}

func (s *VaultService) list(ctx context.Context, service string) ([]*models.Credential, error) {
	creds, err := s.credentials.List(ctx, service)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return creds, nil
}

func (s *VaultService) Create(ctx context.Context, actor Actor, in NewCredentialInput) (*models.Credential, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.ServiceName)
	if name == "" {
		return nil, validationf("service name is required")
	}

	c := &models.Credential{
		ID:          uuid.New(),
		ServiceName: name,
		Username:    strings.TrimSpace(in.Username),
		Secret:      in.Secret,
		Notes:       sanitizeUTF8(strings.TrimSpace(in.Notes)),
		CreatedAt:   time.Now(),
	}
	if err := s.credentials.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.logger.Info("Vault credential added", zap.String("service", c.ServiceName))
	return c, nil
}

func (s *VaultService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	err := s.credentials.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: credential %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
