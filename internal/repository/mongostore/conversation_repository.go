package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
)

type conversationDoc struct {
	ID              string    `bson:"_id"`
	UserName        string    `bson:"user_name"`
	UserProfilePic  string    `bson:"user_profile_pic"`
	LastMessage     string    `bson:"last_message"`
	LastMessageTime string    `bson:"last_message_time"`
	UnreadCount     int       `bson:"unread_count"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

type conversationRepository struct {
	coll *mongo.Collection
}

// NewConversationRepository returns a Mongo-backed implementation.
func NewConversationRepository(db *mongo.Database) repository.ConversationRepository {
	return &conversationRepository{coll: db.Collection(collConversations)}
}

// GetOrCreate upserts on _id (the end-user's id) with $setOnInsert, so two
// near-simultaneous calls cannot race into duplicate conversations. Returning
// the pre-image distinguishes create (no document) from fetch.
func (r *conversationRepository) GetOrCreate(ctx context.Context, conv *domain.Conversation) (bool, error) {
	now := time.Now().UTC()
	insert := conversationDoc{
		ID:              conv.ID,
		UserName:        conv.UserName,
		UserProfilePic:  conv.UserProfilePic,
		LastMessage:     conv.LastMessage,
		LastMessageTime: conv.LastMessageTime,
		UnreadCount:     0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": conv.ID},
		bson.M{"$setOnInsert": insert},
		opts,
	)

	var existing conversationDoc
	err := res.Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		*conv = fromConversationDoc(&insert)
		return true, nil
	}
	if err != nil {
		return false, err
	}
	*conv = fromConversationDoc(&existing)
	return false, nil
}

func (r *conversationRepository) GetByID(ctx context.Context, id string) (*domain.Conversation, error) {
	var doc conversationDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	conv := fromConversationDoc(&doc)
	return &conv, nil
}

func (r *conversationRepository) List(ctx context.Context) ([]domain.Conversation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []domain.Conversation
	for cur.Next(ctx) {
		var doc conversationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		result = append(result, fromConversationDoc(&doc))
	}
	return result, cur.Err()
}

func (r *conversationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"unread_count": 0}})
	return err
}

func fromConversationDoc(doc *conversationDoc) domain.Conversation {
	return domain.Conversation{
		ID:              doc.ID,
		UserName:        doc.UserName,
		UserProfilePic:  doc.UserProfilePic,
		LastMessage:     doc.LastMessage,
		LastMessageTime: doc.LastMessageTime,
		Status:          domain.PresenceOffline,
		UnreadCount:     doc.UnreadCount,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
