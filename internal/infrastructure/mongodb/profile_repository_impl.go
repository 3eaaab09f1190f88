package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andriwibowo/blognest/internal/domain/entity"
	"github.com/andriwibowo/blognest/internal/domain/repository"
)

const collectionProfiles = "profiles"

// ProfileRepository implements repository.ProfileRepository on MongoDB.
// The unique index on user enforces the one-profile-per-user invariant
// even under concurrent creates.
type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{collection: db.Collection(collectionProfiles)}
}

func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type profileDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Name      string             `bson:"name"`
	Career    string             `bson:"career"`
	Bio       string             `bson:"bio"`
	Work      string             `bson:"work"`
	Education string             `bson:"education"`
	Skill     string             `bson:"skill"`
	ProfPic   string             `bson:"prof_pic,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *profileDocument) toEntity() *entity.Profile {
	return &entity.Profile{
		ID:        d.ID.Hex(),
		User:      d.User.Hex(),
		Name:      d.Name,
		Career:    d.Career,
		Bio:       d.Bio,
		Work:      d.Work,
		Education: d.Education,
		Skill:     d.Skill,
		ProfPic:   d.ProfPic,
		CreatedAt: d.CreatedAt,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	owner, err := primitive.ObjectIDFromHex(p.User)
	if err != nil {
		return repository.ErrNotFound
	}
	doc := profileDocument{
		ID:        primitive.NewObjectID(),
		User:      owner,
		Name:      p.Name,
		Career:    p.Career,
		Bio:       p.Bio,
		Work:      p.Work,
		Education: p.Education,
		Skill:     p.Skill,
		ProfPic:   p.ProfPic,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	p.ID = doc.ID.Hex()
	p.CreatedAt = doc.CreatedAt
	return nil
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID string) (*entity.Profile, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var doc profileDocument
	if err := r.collection.FindOne(ctx, bson.M{"user": owner}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *entity.Profile) error {
	owner, err := primitive.ObjectIDFromHex(p.User)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"user": owner}, bson.M{"$set": bson.M{
		"name":      p.Name,
		"career":    p.Career,
		"bio":       p.Bio,
		"work":      p.Work,
		"education": p.Education,
		"skill":     p.Skill,
		"prof_pic":  p.ProfPic,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteByUser(ctx context.Context, userID string) error {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"user": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
