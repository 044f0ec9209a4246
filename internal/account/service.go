package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rxbryan/galoy/pkg/logger"
)

// Service handles account business logic
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new account service
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log.WithField("component", "account"),
	}
}

// Register registers a new account
func (s *Service) Register(ctx context.Context, email, password string) (*Account, error) {
	if email == "" {
		return nil, ErrInvalidEmail
	}

	exists, err := s.repo.Exists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check if account exists: %w", err)
	}
	if exists {
		return nil, ErrAccountAlreadyExists
	}

	acct := &Account{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := acct.SetPassword(password); err != nil {
		return nil, err
	}

	if err := acct.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, acct); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return acct, nil
}

// Login authenticates an account by email and password
func (s *Service) Login(ctx context.Context, email, password string) (*Account, error) {
	acct, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			// Don't reveal that the account doesn't exist
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err := acct.CheckPassword(password); err != nil {
		return nil, err
	}

	acct.UpdateLastLogin()
	if err := s.repo.Update(ctx, acct); err != nil {
		// Non-critical; log and continue
		s.logger.Warn("failed to update last login", "error", err)
	}

	return acct, nil
}

// GetByID retrieves an account by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}
