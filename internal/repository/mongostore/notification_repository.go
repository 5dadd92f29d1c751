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

type notificationDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Type        string    `bson:"type"`
	IsRead      bool      `bson:"is_read"`
	Time        string    `bson:"time"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type notificationRepository struct {
	coll *mongo.Collection
}

// NewNotificationRepository returns a Mongo-backed implementation.
func NewNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &notificationRepository{coll: db.Collection(collNotifications)}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	now := time.Now().UTC()
	n.ID = uuid.NewString()
	n.CreatedAt = now
	n.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, notificationDoc{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Type:        string(n.Type),
		IsRead:      n.IsRead,
		Time:        n.Time,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	})
	return err
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []domain.Notification
	for cur.Next(ctx) {
		var doc notificationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		result = append(result, domain.Notification{
			ID:          doc.ID,
			Title:       doc.Title,
			Description: doc.Description,
			Type:        domain.NotificationType(doc.Type),
			IsRead:      doc.IsRead,
			Time:        doc.Time,
			CreatedAt:   doc.CreatedAt,
			UpdatedAt:   doc.UpdatedAt,
		})
	}
	return result, cur.Err()
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}
