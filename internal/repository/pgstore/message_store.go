package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
)

type messageStore struct {
	pool *pgxpool.Pool
}

// NewMessageStore returns a Postgres-backed implementation.
func NewMessageStore(pool *pgxpool.Pool) repository.MessageStore {
	return &messageStore{pool: pool}
}

// Append inserts the message and patches the parent conversation's preview in
// one transaction, so a crash can never leave the preview ahead of or behind
// the durably stored message.
func (s *messageStore) Append(ctx context.Context, msg *domain.Message) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertQuery = `
        INSERT INTO messages (conversation_id, role, sender, text, timestamp_label)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insertQuery,
		msg.ConversationID,
		msg.Role,
		msg.Sender,
		msg.Text,
		msg.Timestamp,
	).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrNotFound
		}
		return err
	}

	unreadDelta := 0
	if msg.Role == domain.RoleUser {
		unreadDelta = 1
	}
	const updateQuery = `
        UPDATE conversations
        SET last_message=$1, last_message_time=$2, unread_count=unread_count+$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := tx.Exec(ctx, updateQuery, msg.Text, msg.Timestamp, unreadDelta, msg.ConversationID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (s *messageStore) ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error) {
	const query = `
        SELECT id, conversation_id, role, sender, text, timestamp_label, created_at
        FROM messages WHERE conversation_id=$1 ORDER BY created_at ASC`
	rows, err := s.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := scanMessage(rows, &msg); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}

func scanMessage(row pgx.Row, msg *domain.Message) error {
	err := row.Scan(
		&msg.ID,
		&msg.ConversationID,
		&msg.Role,
		&msg.Sender,
		&msg.Text,
		&msg.Timestamp,
		&msg.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
