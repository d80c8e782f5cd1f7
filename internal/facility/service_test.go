package facility

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	facilities map[string]*Facility
	nextID     int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{facilities: make(map[string]*Facility)}
}

func (r *fakeRepository) Create(_ context.Context, f *Facility) error {
	r.nextID++
	f.ID = fmt.Sprintf("facility-%d", r.nextID)
	stored := *f
	r.facilities[f.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Facility, error) {
	f, ok := r.facilities[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *fakeRepository) List(_ context.Context, _ Filter) ([]*Facility, int, error) {
	var out []*Facility
	for _, f := range r.facilities {
		copied := *f
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepository) Update(_ context.Context, f *Facility) error {
	if _, ok := r.facilities[f.ID]; !ok {
		return ErrNotFound
	}
	stored := *f
	r.facilities[f.ID] = &stored
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.facilities[id]; !ok {
		return ErrNotFound
	}
	delete(r.facilities, id)
	return nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Name:      "Meeting Room A",
		Category:  CategoryMeeting,
		OpenTime:  "09:00",
		CloseTime: "18:00",
	}
}

func TestCreateFacility(t *testing.T) {
	svc := NewService(newFakeRepository())

	f, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "Meeting Room A", f.Name)
	assert.Equal(t, StatusAvailable, f.Status, "new facilities start out available")
}

func TestCreateFacilityValidation(t *testing.T) {
	svc := NewService(newFakeRepository())

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{
			name:    "blank name",
			mutate:  func(r *CreateRequest) { r.Name = "   " },
			wantErr: ErrEmptyName,
		},
		{
			name:    "unknown category",
			mutate:  func(r *CreateRequest) { r.Category = Category("garage") },
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "malformed open time",
			mutate:  func(r *CreateRequest) { r.OpenTime = "9am" },
			wantErr: ErrInvalidHours,
		},
		{
			name:    "malformed close time",
			mutate:  func(r *CreateRequest) { r.CloseTime = "25:00" },
			wantErr: ErrInvalidHours,
		},
		{
			name: "close before open",
			mutate: func(r *CreateRequest) {
				r.OpenTime = "18:00"
				r.CloseTime = "09:00"
			},
			wantErr: ErrInvalidHours,
		},
		{
			name: "close equal to open",
			mutate: func(r *CreateRequest) {
				r.OpenTime = "09:00"
				r.CloseTime = "09:00"
			},
			wantErr: ErrInvalidHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateFacility(t *testing.T) {
	svc := NewService(newFakeRepository())

	f, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		name := "Meeting Room B"
		updated, err := svc.Update(context.Background(), f.ID, UpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Meeting Room B", updated.Name)
		assert.Equal(t, CategoryMeeting, updated.Category)
		assert.Equal(t, "09:00", updated.OpenTime)
	})

	t.Run("status change to maintenance", func(t *testing.T) {
		status := StatusMaintenance
		updated, err := svc.Update(context.Background(), f.ID, UpdateRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, StatusMaintenance, updated.Status)
		assert.False(t, updated.IsBookable())
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		status := Status("demolished")
		_, err := svc.Update(context.Background(), f.ID, UpdateRequest{Status: &status})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("hours validated as a pair", func(t *testing.T) {
		open := "19:00" // existing close is 18:00
		_, err := svc.Update(context.Background(), f.ID, UpdateRequest{OpenTime: &open})
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("unknown facility", func(t *testing.T) {
		name := "Nope"
		_, err := svc.Update(context.Background(), "missing", UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteFacility(t *testing.T) {
	svc := NewService(newFakeRepository())

	f, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), f.ID))
	_, err = svc.GetByID(context.Background(), f.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), f.ID), ErrNotFound)
}

func TestIsBookable(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusAvailable, true},
		{StatusOccupied, true},
		{StatusMaintenance, false},
		{StatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			f := &Facility{Status: tt.status}
			assert.Equal(t, tt.want, f.IsBookable())
		})
	}
}
