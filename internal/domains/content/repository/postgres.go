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

	"reflection-backend/internal/domains/content/model"
	"reflection-backend/pkg/cache"
)

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
	contentCacheKeyPrefix = "content:published:"
	contentCacheTTL       = 5 * time.Minute
)

func publishedCacheKey(authorID uuid.UUID, slug string) string {
	return contentCacheKeyPrefix + authorID.String() + ":" + slug
}

const contentColumns = `id, author_id, type, title, slug, excerpt, body, cover_image_url, access, tags,
        status, rejection_feedback, reviewed_by, reviewed_at, published_at, created_at, updated_at`

func scanContent(row pgx.Row) (*model.Content, error) {
	var c model.Content
	err := row.Scan(
		&c.ID,
		&c.AuthorID,
		&c.Type,
		&c.Title,
		&c.Slug,
		&c.Excerpt,
		&c.Body,
		&c.CoverImageURL,
		&c.Access,
		&c.Tags,
		&c.Status,
		&c.RejectionFeedback,
		&c.ReviewedBy,
		&c.ReviewedAt,
		&c.PublishedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Content) (*model.Content, error) {
	query := `
        INSERT INTO contents (author_id, type, title, slug, excerpt, body, access, tags, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + contentColumns

	created, err := scanContent(r.pool.QueryRow(ctx, query,
		c.AuthorID, c.Type, c.Title, c.Slug, c.Excerpt, c.Body, c.Access, c.Tags, c.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE id = $1`

	c, err := scanContent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get content by id: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) GetPublishedBySlug(ctx context.Context, authorID uuid.UUID, slug string) (*model.Content, error) {
	cacheKey := publishedCacheKey(authorID, slug)

	var cached model.Content
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	query := `
        SELECT ` + contentColumns + `
        FROM contents
        WHERE author_id = $1 AND slug = $2 AND status = 'PUBLISHED'`

	c, err := scanContent(r.pool.QueryRow(ctx, query, authorID, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get published content: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, c, contentCacheTTL)

	return c, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.ContentFilter) ([]model.Content, int64, error) {
	filter.Normalize()

	var conds []string
	var args []interface{}

	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		conds = append(conds, fmt.Sprintf("author_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM contents %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contents: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT `+contentColumns+`
        FROM contents
        %s
        ORDER BY created_at DESC
        LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contents: %w", err)
	}
	defer rows.Close()

	var contents []model.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan content: %w", err)
		}
		contents = append(contents, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read contents: %w", err)
	}

	return contents, total, nil
}

func (r *postgresRepository) ReviewIfPending(ctx context.Context, id uuid.UUID, approve bool, feedback *string, reviewedBy uuid.UUID, reviewedAt time.Time) (*model.Content, error) {
	var query string
	var args []interface{}

	if approve {
		// publishedAt is set exactly once, together with the transition.
		query = `
            UPDATE contents
            SET status = 'PUBLISHED',
                reviewed_by = $2,
                reviewed_at = $3,
                published_at = $3,
                updated_at = NOW()
            WHERE id = $1 AND status = 'PENDING_REVIEW'
            RETURNING ` + contentColumns
		args = []interface{}{id, reviewedBy, reviewedAt}
	} else {
		query = `
            UPDATE contents
            SET status = 'REJECTED',
                rejection_feedback = $2,
                reviewed_by = $3,
                reviewed_at = $4,
                updated_at = NOW()
            WHERE id = $1 AND status = 'PENDING_REVIEW'
            RETURNING ` + contentColumns
		args = []interface{}{id, feedback, reviewedBy, reviewedAt}
	}

	c, err := scanContent(r.pool.QueryRow(ctx, query, args...))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to review content: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM contents WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check content existence: %w", err)
	}
	if !exists {
		return nil, model.ErrContentNotFound
	}
	return nil, model.ErrAlreadyReviewed
}

func (r *postgresRepository) SubmitForReview(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error) {
	query := `
        UPDATE contents
        SET status = 'PENDING_REVIEW',
            rejection_feedback = NULL,
            updated_at = NOW()
        WHERE id = $1 AND author_id = $2 AND status IN ('DRAFT', 'REJECTED')
        RETURNING ` + contentColumns

	c, err := scanContent(r.pool.QueryRow(ctx, query, id, authorID))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to submit content: %w", err)
	}

	return nil, r.classifyNoRows(ctx, id, authorID)
}

func (r *postgresRepository) Archive(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error) {
	query := `
        UPDATE contents
        SET status = 'ARCHIVED',
            updated_at = NOW()
        WHERE id = $1 AND author_id = $2 AND status = 'PUBLISHED'
        RETURNING ` + contentColumns

	c, err := scanContent(r.pool.QueryRow(ctx, query, id, authorID))
	if err == nil {
		_ = r.cache.Delete(ctx, publishedCacheKey(c.AuthorID, c.Slug))
		return c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to archive content: %w", err)
	}

	return nil, r.classifyNoRows(ctx, id, authorID)
}

func (r *postgresRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contents SET cover_image_url = $2, updated_at = NOW() WHERE id = $1`,
		id, url)
	if err != nil {
		return fmt.Errorf("failed to update cover image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrContentNotFound
	}
	return nil
}

// classifyNoRows decides which error an owner-guarded CAS failure means.
func (r *postgresRepository) classifyNoRows(ctx context.Context, id, authorID uuid.UUID) error {
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT author_id FROM contents WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrContentNotFound
		}
		return fmt.Errorf("failed to check content: %w", err)
	}
	if ownerID != authorID {
		return model.ErrNotOwner
	}
	return model.ErrInvalidState
}
