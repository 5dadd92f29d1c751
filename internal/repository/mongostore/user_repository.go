package mongostore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Package      string    `bson:"package"`
	Status       string    `bson:"status"`
	DOB          string    `bson:"dob"`
	Gender       string    `bson:"gender"`
	Mobile       string    `bson:"mobile"`
	LinkedIn     string    `bson:"linkedin"`
	Address      string    `bson:"address"`
	ProfilePic   string    `bson:"profile_pic"`
	Documents    docFields `bson:"documents"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type docFields struct {
	IDProof      string `bson:"id_proof"`
	ServiceGuide string `bson:"service_guide"`
	Contract     string `bson:"contract"`
	CoverLetter  string `bson:"cover_letter"`
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository returns a Mongo-backed implementation. Email uniqueness
// relies on the unique email index created by EnsureIndexes.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(collUsers)}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, toUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()
	doc := toUserDoc(user)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.fetchSingle(ctx, bson.M{"_id": id})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchSingle(ctx, bson.M{"email": email})
}

func (r *userRepository) fetchSingle(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	user := fromUserDoc(&doc)
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		result = append(result, fromUserDoc(&doc))
	}
	return result, cur.Err()
}

func toUserDoc(user *domain.User) userDoc {
	return userDoc{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Package:      string(user.Package),
		Status:       string(user.Status),
		DOB:          user.DOB,
		Gender:       user.Gender,
		Mobile:       user.Mobile,
		LinkedIn:     user.LinkedIn,
		Address:      user.Address,
		ProfilePic:   user.ProfilePic,
		Documents: docFields{
			IDProof:      user.Documents.IDProof,
			ServiceGuide: user.Documents.ServiceGuide,
			Contract:     user.Documents.Contract,
			CoverLetter:  user.Documents.CoverLetter,
		},
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func fromUserDoc(doc *userDoc) domain.User {
	return domain.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Package:      domain.Package(doc.Package),
		Status:       domain.UserStatus(doc.Status),
		DOB:          doc.DOB,
		Gender:       doc.Gender,
		Mobile:       doc.Mobile,
		LinkedIn:     doc.LinkedIn,
		Address:      doc.Address,
		ProfilePic:   doc.ProfilePic,
		Documents: domain.Documents{
			IDProof:      doc.Documents.IDProof,
			ServiceGuide: doc.Documents.ServiceGuide,
			Contract:     doc.Documents.Contract,
			CoverLetter:  doc.Documents.CoverLetter,
		},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
