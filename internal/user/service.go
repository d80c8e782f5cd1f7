package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tidegrove/facility-booking-backend/internal/auth"
	"github.com/tidegrove/facility-booking-backend/internal/pkg/apperror"
)

type UpdateRequest struct {
	DisplayName   *string
	IsActive      *bool
	IsSystemAdmin *bool
}

// Service defines business logic related to staff accounts.
type Service interface {
	Register(ctx context.Context, email, password, displayName string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new staff account Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, email, password, displayName string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" {
		return nil, apperror.New(apperror.KindValidation, http.StatusBadRequest, "email is required")
	}

	if len(password) < s.minPasswordLength {
		return nil, apperror.New(apperror.KindValidation, http.StatusBadRequest,
			fmt.Sprintf("password must be at least %d characters", s.minPasswordLength))
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var displayNamePtr *string
	if strings.TrimSpace(displayName) != "" {
		d := strings.TrimSpace(displayName)
		displayNamePtr = &d
	}

	u := &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		DisplayName:  displayNamePtr,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, ErrInactiveUser
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		// Login still succeeds; the timestamp is best effort.
		return u, nil
	}
	u.LastLoginAt = &now

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			u.DisplayName = nil
		} else {
			d := strings.TrimSpace(*req.DisplayName)
			u.DisplayName = &d
		}
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.IsSystemAdmin != nil {
		u.IsSystemAdmin = *req.IsSystemAdmin
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
