// Package mongostore implements the repository interfaces on MongoDB.
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/more-experts/support-portal/internal/repository"
)

// Collection names used by the document-store backend.
const (
	collUsers         = "users"
	collNotifications = "notifications"
	collFeedback      = "feedback"
	collConversations = "conversations"
	collMessages      = "messages"
)

// EnsureIndexes creates the indexes the repositories depend on. The unique
// email index is what turns a duplicate signup into a duplicate-key error
// instead of a second document. Index creation is idempotent, so this runs
// on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := db.Collection(collUsers).Indexes()
	if _, err := userIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	messageIndexes := db.Collection(collMessages).Indexes()
	if _, err := messageIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "created_at", Value: 1}},
	}); err != nil {
		return err
	}

	conversationIndexes := db.Collection(collConversations).Indexes()
	_, err := conversationIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "last_message_time", Value: -1}},
	})
	return err
}

// NewRepositories wires all Mongo-backed repositories over one database handle.
func NewRepositories(db *mongo.Database) repository.Repositories {
	return repository.Repositories{
		Users:         NewUserRepository(db),
		Notifications: NewNotificationRepository(db),
		Feedback:      NewFeedbackRepository(db),
		Conversations: NewConversationRepository(db),
		Messages:      NewMessageStore(db),
	}
}
