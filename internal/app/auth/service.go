package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chowline/internal/adapter/logger"
	"chowline/internal/config"
	"chowline/internal/domain"
	"chowline/internal/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service handles the minimal admin login. Passwords are compared against
// bcrypt hashes; successful logins get an opaque session token.
type Service struct {
	repo   interfaces.UserRepository
	cfg    config.AdminConfig
	logger logger.Logger
}

func NewService(repo interfaces.UserRepository, cfg config.AdminConfig, lgr logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, logger: lgr}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("email and password are required: %w", domain.ErrInvalidRequest)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	s.logger.Info("admin_login", "Admin logged in", "", map[string]interface{}{
		"email": email,
	})

	return uuid.NewString(), nil
}

// EnsureAdmin seeds the configured admin account if it does not exist yet.
func (s *Service) EnsureAdmin(ctx context.Context) error {
	if s.cfg.Email == "" || s.cfg.Password == "" {
		return nil
	}

	if _, err := s.repo.FindByEmail(ctx, s.cfg.Email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &domain.User{
		Email:        s.cfg.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	return s.repo.Create(ctx, user)
}
