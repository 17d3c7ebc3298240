package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reflection-backend/internal/domains/author/model"
	"reflection-backend/pkg/cache"
)

// postgresRepository implements RepositoryInterface with pgxpool
// and a Redis read-through cache on the slug lookup.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorSlugKeyPrefix = "author:slug:"
	authorCacheTTL      = 15 * time.Minute
)

const authorColumns = `id, email, name, slug, bio, monthly_price, status, rejection_reason, reviewed_at, created_at, updated_at`

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.Name,
		&a.Slug,
		&a.Bio,
		&a.MonthlyPrice,
		&a.Status,
		&a.RejectionReason,
		&a.ReviewedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (email, name, slug, bio, monthly_price, status)
        VALUES ($1, $2, $3, $4, $5, 'PENDING')
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query,
		a.Email, a.Name, a.Slug, a.Bio, a.MonthlyPrice,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, model.ErrDuplicateEmail
			}
			return nil, model.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Author, error) {
	cacheKey := authorSlugKeyPrefix + slug

	var cached model.Author
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE slug = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by slug: %w", err)
	}

	// Best-effort cache fill.
	_ = r.cache.Set(ctx, cacheKey, a, authorCacheTTL)

	return a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	filter.Normalize()

	where := ""
	args := []interface{}{}
	if filter.Status != nil {
		where = "WHERE status = $1"
		args = append(args, *filter.Status)
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM authors %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT `+authorColumns+`
        FROM authors
        %s
        ORDER BY created_at DESC
        LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) ReviewIfPending(ctx context.Context, id uuid.UUID, newStatus model.Status, reason *string, reviewedAt time.Time) (*model.Author, error) {
	// Compare-and-set on status: the WHERE clause guarantees that of two
	// concurrent reviews only one sees a PENDING row.
	query := `
        UPDATE authors
        SET status = $2,
            rejection_reason = $3,
            reviewed_at = $4,
            updated_at = NOW()
        WHERE id = $1 AND status = 'PENDING'
        RETURNING ` + authorColumns

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id, newStatus, reason, reviewedAt))
	if err == nil {
		_ = r.cache.Delete(ctx, authorSlugKeyPrefix+a.Slug)
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to review author: %w", err)
	}

	// No row updated: distinguish a missing author from one already reviewed.
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check author existence: %w", err)
	}
	if !exists {
		return nil, model.ErrAuthorNotFound
	}
	return nil, model.ErrAlreadyReviewed
}
