package image

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned when an id is not a valid object id.
var ErrInvalidID = errors.New("invalid image id")

type ImageRepository interface {
	List(ctx context.Context, query ListQuery) ([]Image, int64, error)
	GetByID(ctx context.Context, id string) (*Image, error) // (nil, nil) when not found
	Create(ctx context.Context, img *Image) error
	Update(ctx context.Context, id string, update ImageUpdate) (*Image, error)
	Delete(ctx context.Context, id string) error
}

type imageRepository struct {
	coll *mongo.Collection
}

// NewImageRepository creates a repository over the given collection.
func NewImageRepository(coll *mongo.Collection) ImageRepository {
	return &imageRepository{coll: coll}
}

// EnsureIndexes creates the text, category and recency indexes the
// listing queries rely on. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "tags", Value: "text"},
		}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}

func (r *imageRepository) List(ctx context.Context, query ListQuery) ([]Image, int64, error) {
	filter := bson.M{}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.Search != "" {
		filter["$text"] = bson.M{"$search": query.Search}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(int64(query.Page-1) * int64(query.Limit)).
		SetLimit(int64(query.Limit))
	if query.Search != "" {
		// Rank text matches by relevance instead of recency.
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
		opts.SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	} else {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	images := make([]Image, 0)
	if err := cursor.All(ctx, &images); err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

func (r *imageRepository) GetByID(ctx context.Context, id string) (*Image, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var img Image
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&img)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *imageRepository) Create(ctx context.Context, img *Image) error {
	now := time.Now().UTC()
	img.CreatedAt = now
	img.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, img)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		img.ID = oid
	}
	return nil
}

func (r *imageRepository) Update(ctx context.Context, id string, update ImageUpdate) (*Image, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{
		"title":       update.Title,
		"description": update.Description,
		"tags":        update.Tags,
		"category":    update.Category,
		"updatedAt":   time.Now().UTC(),
	}

	var img Image
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&img)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *imageRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
