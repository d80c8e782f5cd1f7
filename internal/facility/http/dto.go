package http

import (
	"time"

	"github.com/tidegrove/facility-booking-backend/internal/facility"
	"github.com/tidegrove/facility-booking-backend/internal/pkg/request"
)

type FacilityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	OpenTime    string    `json:"open_time"`
	CloseTime   string    `json:"close_time"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewResponse(f *facility.Facility) FacilityResponse {
	return FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Category:    string(f.Category),
		Status:      string(f.Status),
		OpenTime:    f.OpenTime,
		CloseTime:   f.CloseTime,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// FacilityTag is the minimal facility reference embedded in other responses.
type FacilityTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListFacilitiesRequest struct {
	request.ListParams
	Category string `form:"category" binding:"omitempty,oneof=sports meeting wellness other"`
	Status   string `form:"status" binding:"omitempty,oneof=available occupied maintenance closed"`
	Keyword  string `form:"keyword"`
}

type CreateFacilityRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=sports meeting wellness other"`
	OpenTime    string `json:"open_time" binding:"required,datetime=15:04"`
	CloseTime   string `json:"close_time" binding:"required,datetime=15:04"`
	Description string `json:"description"`
}

type UpdateFacilityRequest struct {
	Name        *string `json:"name" binding:"omitempty"`
	Category    *string `json:"category" binding:"omitempty,oneof=sports meeting wellness other"`
	Status      *string `json:"status" binding:"omitempty,oneof=available occupied maintenance closed"`
	OpenTime    *string `json:"open_time" binding:"omitempty,datetime=15:04"`
	CloseTime   *string `json:"close_time" binding:"omitempty,datetime=15:04"`
	Description *string `json:"description"`
}
