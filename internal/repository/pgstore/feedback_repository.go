package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
)

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository returns a Postgres-backed implementation.
func NewFeedbackRepository(pool *pgxpool.Pool) repository.FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	const query = `
        SELECT id, name, email, subject, message, rating, created_at
        FROM feedback ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(
			&fb.ID,
			&fb.Name,
			&fb.Email,
			&fb.Subject,
			&fb.Message,
			&fb.Rating,
			&fb.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, fb)
	}
	return result, rows.Err()
}
