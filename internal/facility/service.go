package facility

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type CreateRequest struct {
	Name        string
	Category    Category
	OpenTime    string
	CloseTime   string
	Description string
}

type UpdateRequest struct {
	Name        *string
	Category    *Category
	Status      *Status
	OpenTime    *string
	CloseTime   *string
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Facility, error)
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Facility, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Facility, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}
	if err := validateHours(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	f := &Facility{
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Status:      StatusAvailable,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		if !ValidCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		f.Category = *req.Category
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		f.Status = *req.Status
	}

	newOpen := f.OpenTime
	newClose := f.CloseTime
	if req.OpenTime != nil {
		newOpen = *req.OpenTime
	}
	if req.CloseTime != nil {
		newClose = *req.CloseTime
	}
	if req.OpenTime != nil || req.CloseTime != nil {
		if err := validateHours(newOpen, newClose); err != nil {
			return nil, err
		}
		f.OpenTime = newOpen
		f.CloseTime = newClose
	}

	if req.Description != nil {
		f.Description = *req.Description
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// validateHours checks that both times parse as HH:MM and close is after open.
func validateHours(open, close string) error {
	openT, err := time.Parse("15:04", open)
	if err != nil {
		return ErrInvalidHours.WithMessage(fmt.Sprintf("invalid open_time %q, expected HH:MM", open))
	}
	closeT, err := time.Parse("15:04", close)
	if err != nil {
		return ErrInvalidHours.WithMessage(fmt.Sprintf("invalid close_time %q, expected HH:MM", close))
	}
	if !closeT.After(openT) {
		return ErrInvalidHours
	}
	return nil
}
