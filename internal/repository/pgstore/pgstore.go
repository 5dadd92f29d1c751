// Package pgstore implements the repository interfaces on PostgreSQL via pgx.
package pgstore

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/more-experts/support-portal/internal/repository"
)

// NewRepositories wires all Postgres-backed repositories over one pool.
func NewRepositories(pool *pgxpool.Pool) repository.Repositories {
	return repository.Repositories{
		Users:         NewUserRepository(pool),
		Notifications: NewNotificationRepository(pool),
		Feedback:      NewFeedbackRepository(pool),
		Conversations: NewConversationRepository(pool),
		Messages:      NewMessageStore(pool),
	}
}

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
