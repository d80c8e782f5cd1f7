package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tidegrove/facility-booking-backend/internal/booking"
	"github.com/tidegrove/facility-booking-backend/internal/pkg/request"
	"github.com/tidegrove/facility-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	filter := booking.Filter{
		FacilityID:     req.FacilityID,
		PaymentStatus:  req.PaymentStatus,
		RequesterEmail: req.RequesterEmail,
		Page:           req.Page,
		PageSize:       req.PageSize,
		SortBy:         req.SortBy,
		SortOrder:      strings.ToUpper(req.SortOrder),
	}
	if req.DateFrom != "" {
		t, _ := time.Parse(dateLayout, req.DateFrom)
		filter.DateFrom = &t
	}
	if req.DateTo != "" {
		t, _ := time.Parse(dateLayout, req.DateTo)
		filter.DateTo = &t
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req, err := body.ToCreateRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date or time format"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// GetByCode handles the customer-facing lookup by booking code.
func (h *Handler) GetByCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking code is required"})
		return
	}

	b, err := h.service.GetByCode(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdatePaymentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.UpdatePaymentStatus(c.Request.Context(), id, booking.PaymentStatus(body.PaymentStatus))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BookedSlots returns the already-reserved intervals for a facility and date.
func (h *Handler) BookedSlots(c *gin.Context) {
	h.slots(c, h.service.ListBookedSlots)
}

// FreeSlots returns the free windows within opening hours for a facility and date.
func (h *Handler) FreeSlots(c *gin.Context) {
	h.slots(c, h.service.AvailableSlots)
}

func (h *Handler) slots(c *gin.Context, query func(ctx context.Context, facilityID string, date time.Time) ([]booking.Interval, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q request.DateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required (YYYY-MM-DD)"})
		return
	}
	date, _ := time.Parse(dateLayout, q.Date)

	slots, err := query(c.Request.Context(), id, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	if slots == nil {
		slots = []booking.Interval{}
	}
	c.JSON(http.StatusOK, gin.H{"date": q.Date, "slots": slots})
}

// Calendar projects bookings in the requested window to renderable events.
func (h *Handler) Calendar(c *gin.Context) {
	var req CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		FacilityID: req.FacilityID,
		PageSize:   500,
		SortBy:     "start_time",
		SortOrder:  "ASC",
	}
	if req.DateFrom != "" {
		t, _ := time.Parse(dateLayout, req.DateFrom)
		filter.DateFrom = &t
	}
	if req.DateTo != "" {
		t, _ := time.Parse(dateLayout, req.DateTo)
		filter.DateTo = &t
	}

	bookings, _, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": booking.ProjectCalendar(bookings)})
}
