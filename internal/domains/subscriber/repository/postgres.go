package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reflection-backend/internal/domains/subscriber/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Subscribe(ctx context.Context, authorID uuid.UUID, email string) (*model.AuthorSubscriber, error) {
	// The conflict arm only reactivates an UNSUBSCRIBED row; an existing
	// ACTIVE row matches nothing and the statement returns no rows.
	query := `
        INSERT INTO author_subscribers (author_id, email, status)
        VALUES ($1, $2, 'ACTIVE')
        ON CONFLICT (author_id, email)
        DO UPDATE SET status = 'ACTIVE', updated_at = NOW()
        WHERE author_subscribers.status = 'UNSUBSCRIBED'
        RETURNING id, author_id, email, status, created_at, updated_at
    `

	var s model.AuthorSubscriber
	err := r.pool.QueryRow(ctx, query, authorID, email).Scan(
		&s.ID,
		&s.AuthorID,
		&s.Email,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	return &s, nil
}

func (r *postgresRepository) Unsubscribe(ctx context.Context, authorID uuid.UUID, email string) error {
	query := `
        UPDATE author_subscribers
        SET status = 'UNSUBSCRIBED', updated_at = NOW()
        WHERE author_id = $1 AND email = $2 AND status = 'ACTIVE'
    `

	tag, err := r.pool.Exec(ctx, query, authorID, email)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSubscriptionNotFound
	}

	return nil
}

func (r *postgresRepository) ListActiveByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.AuthorSubscriber, error) {
	query := `
        SELECT id, author_id, email, status, created_at, updated_at
        FROM author_subscribers
        WHERE author_id = $1 AND status = 'ACTIVE'
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []model.AuthorSubscriber
	for rows.Next() {
		var s model.AuthorSubscriber
		if err := rows.Scan(&s.ID, &s.AuthorID, &s.Email, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscribers: %w", err)
	}

	return subscribers, nil
}

func (r *postgresRepository) CountActiveByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM author_subscribers WHERE author_id = $1 AND status = 'ACTIVE'`,
		authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}
