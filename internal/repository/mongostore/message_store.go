package mongostore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
)

type messageDoc struct {
	ID             string    `bson:"_id"`
	ConversationID string    `bson:"conversation_id"`
	Role           string    `bson:"role"`
	Sender         string    `bson:"sender"`
	Text           string    `bson:"text"`
	Timestamp      string    `bson:"timestamp"`
	CreatedAt      time.Time `bson:"created_at"`
}

type messageStore struct {
	db            *mongo.Database
	messages      *mongo.Collection
	conversations *mongo.Collection
}

// NewMessageStore returns a Mongo-backed implementation.
func NewMessageStore(db *mongo.Database) repository.MessageStore {
	return &messageStore{
		db:            db,
		messages:      db.Collection(collMessages),
		conversations: db.Collection(collConversations),
	}
}

// Append writes the message and the conversation preview patch inside a
// multi-document transaction. Requires the server to run as a replica set,
// which is how the portal's MongoDB is deployed.
func (s *messageStore) Append(ctx context.Context, msg *domain.Message) error {
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()

	session, err := s.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.messages.InsertOne(sc, messageDoc{
			ID:             msg.ID,
			ConversationID: msg.ConversationID,
			Role:           string(msg.Role),
			Sender:         msg.Sender,
			Text:           msg.Text,
			Timestamp:      msg.Timestamp,
			CreatedAt:      msg.CreatedAt,
		}); err != nil {
			return nil, err
		}

		unreadDelta := 0
		if msg.Role == domain.RoleUser {
			unreadDelta = 1
		}
		res, err := s.conversations.UpdateOne(sc,
			bson.M{"_id": msg.ConversationID},
			bson.M{
				"$set": bson.M{
					"last_message":      msg.Text,
					"last_message_time": msg.Timestamp,
					"updated_at":        msg.CreatedAt,
				},
				"$inc": bson.M{"unread_count": unreadDelta},
			},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, repository.ErrNotFound
		}
		return nil, nil
	})
	return err
}

func (s *messageStore) ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.messages.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []domain.Message
	for cur.Next(ctx) {
		var doc messageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		result = append(result, domain.Message{
			ID:             doc.ID,
			ConversationID: doc.ConversationID,
			Role:           domain.MessageRole(doc.Role),
			Sender:         doc.Sender,
			Text:           doc.Text,
			Timestamp:      doc.Timestamp,
			CreatedAt:      doc.CreatedAt,
		})
	}
	return result, cur.Err()
}
