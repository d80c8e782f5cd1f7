package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create persists a new booking. The bookings table carries a unique
	// index on booking_code and a GiST exclusion constraint over
	// (facility_id, booking_date, time range) for non-refunded rows; the
	// in-memory conflict check in the service is only a fast path, the
	// constraint is what makes concurrent overlapping creates safe.
	Create(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByCode(ctx context.Context, code string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListForDate returns all blocking (non-refunded) bookings for the
	// facility on the given calendar date, ordered by start time.
	ListForDate(ctx context.Context, facilityID string, date time.Time) ([]*Booking, error)

	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "b.id, b.booking_code, b.facility_id, f.name, " +
	"b.requester_name, b.requester_email, b.requester_phone, " +
	"b.booking_date, b.start_time, b.end_time, b.duration_hours, " +
	"b.total_price_cents, b.payment_status, b.attendees, " +
	"b.purpose, b.special_requests, b.created_at, b.updated_at"

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	dest := []any{
		&b.ID, &b.BookingCode, &b.FacilityID, &b.FacilityName,
		&b.RequesterName, &b.RequesterEmail, &b.RequesterPhone,
		&b.BookingDate, &b.StartTime, &b.EndTime, &b.DurationHours,
		&b.TotalPriceCents, &b.PaymentStatus, &b.Attendees,
		&b.Purpose, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"booking_code", "facility_id",
			"requester_name", "requester_email", "requester_phone",
			"booking_date", "start_time", "end_time", "duration_hours",
			"total_price_cents", "payment_status",
			"attendees", "purpose", "special_requests",
		).
		Values(
			b.BookingCode, b.FacilityID,
			b.RequesterName, b.RequesterEmail, b.RequesterPhone,
			b.BookingDate, b.StartTime, b.EndTime, b.DurationHours,
			b.TotalPriceCents, b.PaymentStatus,
			b.Attendees, b.Purpose, b.SpecialRequests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				// booking_code collision; the service retries with a fresh code.
				return ErrDuplicateCode
			case pgerrcode.ExclusionViolation:
				// Another transaction committed an overlapping slot first.
				return ErrSlotConflict
			}
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	return r.getByColumn(ctx, "b.id", id)
}

func (r *pgxRepository) GetByCode(ctx context.Context, code string) (*Booking, error) {
	return r.getByColumn(ctx, "b.booking_code", code)
}

func (r *pgxRepository) getByColumn(ctx context.Context, column, value string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.facilities f ON b.facility_id = f.id").
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns + ", count(*) OVER() as total_count").
		From("public.bookings b").
		Join("public.facilities f ON b.facility_id = f.id")

	if filter.FacilityID != "" {
		query = query.Where(squirrel.Eq{"b.facility_id": filter.FacilityID})
	}
	if filter.PaymentStatus != "" {
		query = query.Where(squirrel.Eq{"b.payment_status": filter.PaymentStatus})
	}
	if filter.RequesterEmail != "" {
		query = query.Where(squirrel.Eq{"b.requester_email": filter.RequesterEmail})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.booking_date": filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.booking_date": filter.DateTo})
	}

	// Sorting
	orderBy := "b.start_time"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}

	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForDate(ctx context.Context, facilityID string, date time.Time) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.facilities f ON b.facility_id = f.id").
		Where(squirrel.Eq{"b.facility_id": facilityID}).
		Where(squirrel.Eq{"b.booking_date": date}).
		Where(squirrel.NotEq{"b.payment_status": PaymentRefunded}).
		OrderBy("b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings for date query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings for date failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update payment status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payment status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
