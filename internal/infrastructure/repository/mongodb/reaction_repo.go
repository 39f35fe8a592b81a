package mongodb

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReactionRepository represents the MongoDB implementation of the
// IReactionRepository interface.
//
// The reactions collection carries a unique compound index over
// (user_id, target_kind, target_id); Insert relies on it to reject a second
// reaction for the same triple atomically, which is what makes the toggle
// protocol safe under concurrency.
type ReactionRepository struct {
	collection *mongo.Collection
}

// NewReactionRepository creates and returns a new ReactionRepository instance.
func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{
		collection: db.Collection("reactions"),
	}
}

// EnsureIndexes creates the unique triple index. Called once at startup.
func (r *ReactionRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "target_kind", Value: 1},
			{Key: "target_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_user_target"),
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, model); err != nil {
		return apperr.Unavailable(err, "failed to create reaction index")
	}
	return nil
}

func tripleFilter(userID string, kind entity.TargetKind, targetID string) bson.M {
	return bson.M{
		"user_id":     userID,
		"target_kind": kind,
		"target_id":   targetID,
	}
}

// Insert creates a new reaction. A duplicate triple is rejected by the
// unique index and reported as a Conflict.
func (r *ReactionRepository) Insert(ctx context.Context, reaction *entity.Reaction) error {
	_, err := r.collection.InsertOne(ctx, reaction)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("reaction already exists for target %s", reaction.TargetID)
		}
		return apperr.Unavailable(err, "failed to insert reaction")
	}
	return nil
}

// DeleteByTriple removes the reaction for the triple if one exists, and
// reports whether a document was actually deleted.
func (r *ReactionRepository) DeleteByTriple(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, tripleFilter(userID, kind, targetID))
	if err != nil {
		return false, apperr.Unavailable(err, "failed to delete reaction")
	}
	return res.DeletedCount > 0, nil
}

// ExistsByTriple reports whether a reaction exists for the triple.
func (r *ReactionRepository) ExistsByTriple(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, tripleFilter(userID, kind, targetID), options.Count().SetLimit(1))
	if err != nil {
		return false, apperr.Unavailable(err, "failed to check reaction")
	}
	return count > 0, nil
}

// ListByUserAndKind retrieves the user's reactions of one target kind,
// newest first.
func (r *ReactionRepository) ListByUserAndKind(ctx context.Context, userID string, kind entity.TargetKind) ([]*entity.Reaction, error) {
	filter := bson.M{"user_id": userID, "target_kind": kind}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, apperr.Unavailable(err, "failed to list reactions")
	}
	defer cursor.Close(ctx)

	var reactions []*entity.Reaction
	if err := cursor.All(ctx, &reactions); err != nil {
		return nil, apperr.Unavailable(err, "failed to decode reactions")
	}
	return reactions, nil
}

// CountByTarget counts the reactions for a single target.
func (r *ReactionRepository) CountByTarget(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error) {
	filter := bson.M{"target_kind": kind, "target_id": targetID}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperr.Unavailable(err, "failed to count reactions")
	}
	return count, nil
}

// CountByTargets counts the reactions across a set of targets of one kind.
func (r *ReactionRepository) CountByTargets(ctx context.Context, kind entity.TargetKind, targetIDs []string) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{"target_kind": kind, "target_id": bson.M{"$in": targetIDs}}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperr.Unavailable(err, "failed to count reactions")
	}
	return count, nil
}
