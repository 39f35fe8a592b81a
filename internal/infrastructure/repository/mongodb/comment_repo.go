package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository represents the MongoDB implementation of the
// ICommentRepository interface.
type CommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository creates and returns a new CommentRepository instance.
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection("comments"),
	}
}

// Create inserts a new comment record.
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return apperr.Unavailable(err, "failed to create comment")
	}
	return nil
}

// GetByID retrieves a single comment by its id.
func (r *CommentRepository) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("comment %s not found", commentID)
		}
		return nil, apperr.Unavailable(err, "failed to retrieve comment")
	}
	return &comment, nil
}

// UpdateText replaces the comment's text and returns the new document.
func (r *CommentRepository) UpdateText(ctx context.Context, commentID, text string) (*entity.Comment, error) {
	update := bson.M{
		"$set": bson.M{
			"text":       text,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment entity.Comment
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": commentID}, update, opts).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("comment %s not found", commentID)
		}
		return nil, apperr.Unavailable(err, "failed to update comment")
	}
	return &comment, nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, commentID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		return apperr.Unavailable(err, "failed to delete comment")
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("comment %s not found", commentID)
	}
	return nil
}

// ListByVideo returns a page of a video's comments sorted newest first,
// along with the total count.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string, pagination contract.Pagination) ([]*entity.Comment, int64, error) {
	filter := bson.M{"video_id": videoID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Unavailable(err, "failed to count comments")
	}

	skip := int64((pagination.Page - 1) * pagination.PageSize)
	findOptions := options.Find().
		SetSkip(skip).
		SetLimit(int64(pagination.PageSize)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, apperr.Unavailable(err, "failed to find comments")
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, 0, apperr.Unavailable(err, "failed to decode comments")
	}
	return comments, total, nil
}
