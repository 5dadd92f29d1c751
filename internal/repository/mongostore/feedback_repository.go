package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
)

type feedbackDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Subject   string    `bson:"subject"`
	Message   string    `bson:"message"`
	Rating    int       `bson:"rating"`
	CreatedAt time.Time `bson:"created_at"`
}

type feedbackRepository struct {
	coll *mongo.Collection
}

// NewFeedbackRepository returns a Mongo-backed implementation. The mobile app
// writes this collection directly; the portal only reads it.
func NewFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &feedbackRepository{coll: db.Collection(collFeedback)}
}

func (r *feedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []domain.Feedback
	for cur.Next(ctx) {
		var doc feedbackDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		result = append(result, domain.Feedback{
			ID:        doc.ID,
			Name:      doc.Name,
			Email:     doc.Email,
			Subject:   doc.Subject,
			Message:   doc.Message,
			Rating:    doc.Rating,
			CreatedAt: doc.CreatedAt,
		})
	}
	return result, cur.Err()
}
