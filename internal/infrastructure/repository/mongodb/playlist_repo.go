package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaylistRepository represents the MongoDB implementation of the
// IPlaylistRepository interface.
//
// Membership mutation uses single-document field operators ($push guarded by
// a $ne filter, $pull), so adds and removes on the same playlist serialize
// inside the store and never clobber each other's updates.
type PlaylistRepository struct {
	collection *mongo.Collection
}

// NewPlaylistRepository creates and returns a new PlaylistRepository instance.
func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{
		collection: db.Collection("playlists"),
	}
}

// Create inserts a new playlist record.
func (r *PlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, playlist); err != nil {
		return apperr.Unavailable(err, "failed to create playlist")
	}
	return nil
}

// GetByID retrieves a single playlist by its id.
func (r *PlaylistRepository) GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.collection.FindOne(ctx, bson.M{"_id": playlistID}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("playlist %s not found", playlistID)
		}
		return nil, apperr.Unavailable(err, "failed to retrieve playlist")
	}
	return &playlist, nil
}

// ListByOwner retrieves all playlists owned by ownerID, newest first.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID}, findOptions)
	if err != nil {
		return nil, apperr.Unavailable(err, "failed to list playlists")
	}
	defer cursor.Close(ctx)

	var playlists []*entity.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, apperr.Unavailable(err, "failed to decode playlists")
	}
	return playlists, nil
}

// AddVideo appends videoID to the playlist's membership in one atomic store
// call. The filter only matches when the video is not yet a member, so a
// matched update is guaranteed to be a unique append; a non-match is then
// disambiguated into NotFound vs Conflict with a follow-up read.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error) {
	filter := bson.M{
		"_id":    playlistID,
		"videos": bson.M{"$ne": videoID},
	}
	update := bson.M{
		"$push": bson.M{"videos": videoID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist entity.Playlist
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&playlist)
	if err == nil {
		return &playlist, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.Unavailable(err, "failed to add video to playlist")
	}

	// No match: playlist absent, or video already present.
	if _, getErr := r.GetByID(ctx, playlistID); getErr != nil {
		return nil, getErr
	}
	return nil, apperr.Conflict("video %s already in playlist %s", videoID, playlistID)
}

// RemoveVideo pulls videoID from the playlist's membership in one atomic
// store call. Removing an absent member is a no-op.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error) {
	update := bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist entity.Playlist
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": playlistID}, update, opts).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("playlist %s not found", playlistID)
		}
		return nil, apperr.Unavailable(err, "failed to remove video from playlist")
	}
	return &playlist, nil
}

// UpdateFields applies a partial $set update and returns the new document.
func (r *PlaylistRepository) UpdateFields(ctx context.Context, playlistID string, updates map[string]interface{}) (*entity.Playlist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist entity.Playlist
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": playlistID}, bson.M{"$set": updates}, opts).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("playlist %s not found", playlistID)
		}
		return nil, apperr.Unavailable(err, "failed to update playlist")
	}
	return &playlist, nil
}

// Delete removes the playlist entirely.
func (r *PlaylistRepository) Delete(ctx context.Context, playlistID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": playlistID})
	if err != nil {
		return apperr.Unavailable(err, "failed to delete playlist")
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("playlist %s not found", playlistID)
	}
	return nil
}
