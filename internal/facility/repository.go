package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Facility) error
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, f *Facility) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Facility) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.facilities").
		Columns("name", "category", "status", "open_time", "close_time", "description").
		Values(f.Name, f.Category, f.Status, f.OpenTime, f.CloseTime, f.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create facility query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Facility, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "category", "status", "open_time", "close_time",
		"description", "created_at", "updated_at",
	).
		From("public.facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get facility query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var f Facility
	if err := row.Scan(
		&f.ID, &f.Name, &f.Category, &f.Status, &f.OpenTime, &f.CloseTime,
		&f.Description, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "category", "status", "open_time", "close_time",
		"description", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.facilities")

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	query = query.OrderBy("name ASC")

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
		return nil, 0, fmt.Errorf("build list facilities query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list facilities failed: %w", err)
	}
	defer rows.Close()

	var facilities []*Facility
	var total int

	for rows.Next() {
		var f Facility
		if err := rows.Scan(
			&f.ID, &f.Name, &f.Category, &f.Status, &f.OpenTime, &f.CloseTime,
			&f.Description, &f.CreatedAt, &f.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan facility failed: %w", err)
		}
		facilities = append(facilities, &f)
	}

	return facilities, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Facility) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.facilities").
		Set("name", f.Name).
		Set("category", f.Category).
		Set("status", f.Status).
		Set("open_time", f.OpenTime).
		Set("close_time", f.CloseTime).
		Set("description", f.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update facility query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete facility query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
