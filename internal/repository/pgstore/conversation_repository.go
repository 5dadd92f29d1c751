package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
)

type conversationRepository struct {
	pool *pgxpool.Pool
}

// NewConversationRepository returns a Postgres-backed implementation.
func NewConversationRepository(pool *pgxpool.Pool) repository.ConversationRepository {
	return &conversationRepository{pool: pool}
}

const conversationColumns = `id, user_name, user_profile_pic, last_message, last_message_time,
        unread_count, created_at, updated_at`

// GetOrCreate upserts on the primary key, which is the end-user's id. The
// ON CONFLICT DO NOTHING form returns no row for an existing conversation, in
// which case the stored record is loaded unchanged.
func (r *conversationRepository) GetOrCreate(ctx context.Context, conv *domain.Conversation) (bool, error) {
	const query = `
        INSERT INTO conversations (id, user_name, user_profile_pic, last_message, last_message_time, unread_count)
        VALUES ($1,$2,$3,$4,$5,0)
        ON CONFLICT (id) DO NOTHING
        RETURNING ` + conversationColumns

	err := scanConversation(r.pool.QueryRow(ctx, query,
		conv.ID,
		conv.UserName,
		conv.UserProfilePic,
		conv.LastMessage,
		conv.LastMessageTime,
	), conv)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	existing, err := r.GetByID(ctx, conv.ID)
	if err != nil {
		return false, err
	}
	*conv = *existing
	return false, nil
}

func (r *conversationRepository) GetByID(ctx context.Context, id string) (*domain.Conversation, error) {
	const query = `SELECT ` + conversationColumns + ` FROM conversations WHERE id=$1`

	var conv domain.Conversation
	if err := scanConversation(r.pool.QueryRow(ctx, query, id), &conv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) List(ctx context.Context) ([]domain.Conversation, error) {
	const query = `SELECT ` + conversationColumns + ` FROM conversations ORDER BY updated_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Conversation
	for rows.Next() {
		var conv domain.Conversation
		if err := scanConversation(rows, &conv); err != nil {
			return nil, err
		}
		result = append(result, conv)
	}
	return result, rows.Err()
}

func (r *conversationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE conversations SET unread_count=0 WHERE id=$1`, id)
	return err
}

func scanConversation(row pgx.Row, conv *domain.Conversation) error {
	if err := row.Scan(
		&conv.ID,
		&conv.UserName,
		&conv.UserProfilePic,
		&conv.LastMessage,
		&conv.LastMessageTime,
		&conv.UnreadCount,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	); err != nil {
		return err
	}
	conv.Status = domain.PresenceOffline
	return nil
}
