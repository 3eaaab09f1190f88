package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/andriwibowo/blognest/internal/domain/entity"
	"github.com/andriwibowo/blognest/internal/domain/repository"
)

const collectionBlogs = "blogs"

// BlogRepository implements repository.BlogRepository on MongoDB.
type BlogRepository struct {
	collection *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{collection: db.Collection(collectionBlogs)}
}

func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}},
	})
	return err
}

type blogDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	User       primitive.ObjectID `bson:"user"`
	Title      string             `bson:"title"`
	Caption    string             `bson:"caption"`
	Desc       string             `bson:"desc"`
	Pic        string             `bson:"pic,omitempty"`
	Category   string             `bson:"category"`
	AuthorName string             `bson:"authorName,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d *blogDocument) toEntity() *entity.Blog {
	return &entity.Blog{
		ID:         d.ID.Hex(),
		User:       d.User.Hex(),
		Title:      d.Title,
		Caption:    d.Caption,
		Desc:       d.Desc,
		Pic:        d.Pic,
		Category:   d.Category,
		AuthorName: d.AuthorName,
		CreatedAt:  d.CreatedAt,
	}
}

func (r *BlogRepository) Create(ctx context.Context, b *entity.Blog) error {
	owner, err := primitive.ObjectIDFromHex(b.User)
	if err != nil {
		return repository.ErrNotFound
	}
	doc := blogDocument{
		ID:         primitive.NewObjectID(),
		User:       owner,
		Title:      b.Title,
		Caption:    b.Caption,
		Desc:       b.Desc,
		Pic:        b.Pic,
		Category:   b.Category,
		AuthorName: b.AuthorName,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	b.ID = doc.ID.Hex()
	b.CreatedAt = doc.CreatedAt
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var doc blogDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *BlogRepository) ListByUser(ctx context.Context, userID string) ([]entity.Blog, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.list(ctx, bson.M{"user": owner})
}

func (r *BlogRepository) ListAll(ctx context.Context) ([]entity.Blog, error) {
	return r.list(ctx, bson.M{})
}

func (r *BlogRepository) list(ctx context.Context, filter bson.M) ([]entity.Blog, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	blogs := []entity.Blog{}
	for cur.Next(ctx) {
		var doc blogDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		blogs = append(blogs, *doc.toEntity())
	}
	return blogs, cur.Err()
}

// Update replaces every stored field with the entity's current values.
// The caller is responsible for the replace-or-keep-existing merge.
func (r *BlogRepository) Update(ctx context.Context, b *entity.Blog) error {
	oid, err := primitive.ObjectIDFromHex(b.ID)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":      b.Title,
		"caption":    b.Caption,
		"desc":       b.Desc,
		"pic":        b.Pic,
		"category":   b.Category,
		"authorName": b.AuthorName,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.BlogRepository = (*BlogRepository)(nil)
