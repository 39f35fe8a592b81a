package mongodb

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoRepository represents the MongoDB implementation of the
// IVideoRepository interface.
type VideoRepository struct {
	collection *mongo.Collection
}

// NewVideoRepository creates and returns a new VideoRepository instance.
func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{
		collection: db.Collection("videos"),
	}
}

// buildVideoFilterAndSort creates a BSON filter and sort from VideoFilterOptions.
func buildVideoFilterAndSort(opts *contract.VideoFilterOptions) (bson.M, bson.D) {
	filter := bson.M{"is_published": true}

	if opts.Query != "" {
		filter["title"] = bson.M{"$regex": opts.Query, "$options": "i"}
	}
	if opts.OwnerID != "" {
		filter["owner_id"] = opts.OwnerID
	}

	sortOrder := -1
	if opts.SortOrder == "asc" {
		sortOrder = 1
	}
	sortKey := opts.SortBy
	switch sortKey {
	case "views", "title":
	default:
		sortKey = "created_at"
	}
	return filter, bson.D{{Key: sortKey, Value: sortOrder}}
}

// Create inserts a new video record.
func (r *VideoRepository) Create(ctx context.Context, video *entity.Video) error {
	if _, err := r.collection.InsertOne(ctx, video); err != nil {
		return apperr.Unavailable(err, "failed to create video")
	}
	return nil
}

// GetByID retrieves a single video by its id.
func (r *VideoRepository) GetByID(ctx context.Context, videoID string) (*entity.Video, error) {
	var video entity.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": videoID}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("video %s not found", videoID)
		}
		return nil, apperr.Unavailable(err, "failed to retrieve video")
	}
	return &video, nil
}

// List returns a filtered, sorted page of published videos and the total count.
func (r *VideoRepository) List(ctx context.Context, opts *contract.VideoFilterOptions) ([]*entity.Video, int64, error) {
	filter, sort := buildVideoFilterAndSort(opts)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Unavailable(err, "failed to count videos")
	}

	skip := int64((opts.Page - 1) * opts.PageSize)
	findOptions := options.Find().
		SetSkip(skip).
		SetLimit(int64(opts.PageSize)).
		SetSort(sort)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, apperr.Unavailable(err, "failed to find videos")
	}
	defer cursor.Close(ctx)

	var videos []*entity.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, 0, apperr.Unavailable(err, "failed to decode videos")
	}
	return videos, total, nil
}

// ListByOwner returns a page of a channel's videos, newest first.
func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID string, pagination contract.Pagination) ([]*entity.Video, int64, error) {
	filter := bson.M{"owner_id": ownerID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Unavailable(err, "failed to count videos")
	}

	skip := int64((pagination.Page - 1) * pagination.PageSize)
	findOptions := options.Find().
		SetSkip(skip).
		SetLimit(int64(pagination.PageSize)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, apperr.Unavailable(err, "failed to find videos")
	}
	defer cursor.Close(ctx)

	var videos []*entity.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, 0, apperr.Unavailable(err, "failed to decode videos")
	}
	return videos, total, nil
}

// AllByOwner returns every video owned by ownerID, for stat aggregation.
func (r *VideoRepository) AllByOwner(ctx context.Context, ownerID string) ([]*entity.Video, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, apperr.Unavailable(err, "failed to find videos")
	}
	defer cursor.Close(ctx)

	var videos []*entity.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, apperr.Unavailable(err, "failed to decode videos")
	}
	return videos, nil
}

// UpdateFields applies a partial $set update and returns the new document.
func (r *VideoRepository) UpdateFields(ctx context.Context, videoID string, updates map[string]interface{}) (*entity.Video, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video entity.Video
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": videoID}, bson.M{"$set": updates}, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("video %s not found", videoID)
		}
		return nil, apperr.Unavailable(err, "failed to update video")
	}
	return &video, nil
}

// Delete removes the video record.
func (r *VideoRepository) Delete(ctx context.Context, videoID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": videoID})
	if err != nil {
		return apperr.Unavailable(err, "failed to delete video")
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("video %s not found", videoID)
	}
	return nil
}
