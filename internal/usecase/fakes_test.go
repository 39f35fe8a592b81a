package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// In-memory repository fakes. They hold the same atomicity guarantees the
// real store gives: a mutex makes every call a single indivisible step, the
// reaction fake enforces triple uniqueness, and the playlist fake performs
// check-and-mutate membership updates under one lock acquisition.

type tripleKey struct {
	userID   string
	kind     entity.TargetKind
	targetID string
}

type fakeReactionRepo struct {
	mu        sync.Mutex
	reactions map[tripleKey]*entity.Reaction
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[tripleKey]*entity.Reaction)}
}

func (f *fakeReactionRepo) Insert(_ context.Context, reaction *entity.Reaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := tripleKey{reaction.UserID, reaction.TargetKind, reaction.TargetID}
	if _, exists := f.reactions[key]; exists {
		return apperr.Conflict("reaction already exists")
	}
	f.reactions[key] = reaction
	return nil
}

func (f *fakeReactionRepo) DeleteByTriple(_ context.Context, userID string, kind entity.TargetKind, targetID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := tripleKey{userID, kind, targetID}
	if _, exists := f.reactions[key]; !exists {
		return false, nil
	}
	delete(f.reactions, key)
	return true, nil
}

func (f *fakeReactionRepo) ExistsByTriple(_ context.Context, userID string, kind entity.TargetKind, targetID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, exists := f.reactions[tripleKey{userID, kind, targetID}]
	return exists, nil
}

func (f *fakeReactionRepo) ListByUserAndKind(_ context.Context, userID string, kind entity.TargetKind) ([]*entity.Reaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Reaction
	for key, reaction := range f.reactions {
		if key.userID == userID && key.kind == kind {
			out = append(out, reaction)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetID < out[j].TargetID })
	return out, nil
}

func (f *fakeReactionRepo) CountByTarget(_ context.Context, kind entity.TargetKind, targetID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for key := range f.reactions {
		if key.kind == kind && key.targetID == targetID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReactionRepo) CountByTargets(_ context.Context, kind entity.TargetKind, targetIDs []string) (int64, error) {
	var total int64
	for _, targetID := range targetIDs {
		count, _ := f.CountByTarget(context.Background(), kind, targetID)
		total += count
	}
	return total, nil
}

type fakePlaylistRepo struct {
	mu        sync.Mutex
	playlists map[string]*entity.Playlist
}

func newFakePlaylistRepo() *fakePlaylistRepo {
	return &fakePlaylistRepo{playlists: make(map[string]*entity.Playlist)}
}

func clonePlaylist(p *entity.Playlist) *entity.Playlist {
	cp := *p
	cp.VideoIDs = append([]string(nil), p.VideoIDs...)
	return &cp
}

func (f *fakePlaylistRepo) Create(_ context.Context, playlist *entity.Playlist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playlists[playlist.ID] = clonePlaylist(playlist)
	return nil
}

func (f *fakePlaylistRepo) GetByID(_ context.Context, playlistID string) (*entity.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	playlist, ok := f.playlists[playlistID]
	if !ok {
		return nil, apperr.NotFound("playlist not found")
	}
	return clonePlaylist(playlist), nil
}

func (f *fakePlaylistRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Playlist
	for _, playlist := range f.playlists {
		if playlist.OwnerID == ownerID {
			out = append(out, clonePlaylist(playlist))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePlaylistRepo) AddVideo(_ context.Context, playlistID, videoID string) (*entity.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	playlist, ok := f.playlists[playlistID]
	if !ok {
		return nil, apperr.NotFound("playlist not found")
	}
	for _, id := range playlist.VideoIDs {
		if id == videoID {
			return nil, apperr.Conflict("video is already in the playlist")
		}
	}
	playlist.VideoIDs = append(playlist.VideoIDs, videoID)
	playlist.UpdatedAt = time.Now()
	return clonePlaylist(playlist), nil
}

func (f *fakePlaylistRepo) RemoveVideo(_ context.Context, playlistID, videoID string) (*entity.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	playlist, ok := f.playlists[playlistID]
	if !ok {
		return nil, apperr.NotFound("playlist not found")
	}
	kept := playlist.VideoIDs[:0]
	for _, id := range playlist.VideoIDs {
		if id != videoID {
			kept = append(kept, id)
		}
	}
	playlist.VideoIDs = kept
	playlist.UpdatedAt = time.Now()
	return clonePlaylist(playlist), nil
}

func (f *fakePlaylistRepo) UpdateFields(_ context.Context, playlistID string, updates map[string]interface{}) (*entity.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	playlist, ok := f.playlists[playlistID]
	if !ok {
		return nil, apperr.NotFound("playlist not found")
	}
	if name, ok := updates["name"].(string); ok {
		playlist.Name = name
	}
	if description, ok := updates["description"].(string); ok {
		playlist.Description = description
	}
	if updatedAt, ok := updates["updated_at"].(time.Time); ok {
		playlist.UpdatedAt = updatedAt
	}
	return clonePlaylist(playlist), nil
}

func (f *fakePlaylistRepo) Delete(_ context.Context, playlistID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.playlists[playlistID]; !ok {
		return apperr.NotFound("playlist not found")
	}
	delete(f.playlists, playlistID)
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*entity.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, commentID string) (*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[commentID]
	if !ok {
		return nil, apperr.NotFound("comment not found")
	}
	cp := *comment
	return &cp, nil
}

func (f *fakeCommentRepo) UpdateText(_ context.Context, commentID, text string) (*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[commentID]
	if !ok {
		return nil, apperr.NotFound("comment not found")
	}
	comment.Text = text
	comment.UpdatedAt = time.Now()
	cp := *comment
	return &cp, nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, commentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.comments[commentID]; !ok {
		return apperr.NotFound("comment not found")
	}
	delete(f.comments, commentID)
	return nil
}

func (f *fakeCommentRepo) ListByVideo(_ context.Context, videoID string, pagination contract.Pagination) ([]*entity.Comment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Comment
	for _, comment := range f.comments {
		if comment.VideoID == videoID {
			cp := *comment
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := (pagination.Page - 1) * pagination.PageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pagination.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

type fakeVideoRepo struct {
	mu     sync.Mutex
	videos map[string]*entity.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: make(map[string]*entity.Video)}
}

func (f *fakeVideoRepo) Create(_ context.Context, video *entity.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *video
	f.videos[video.ID] = &cp
	return nil
}

func (f *fakeVideoRepo) GetByID(_ context.Context, videoID string) (*entity.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	video, ok := f.videos[videoID]
	if !ok {
		return nil, apperr.NotFound("video not found")
	}
	cp := *video
	return &cp, nil
}

func (f *fakeVideoRepo) List(_ context.Context, opts *contract.VideoFilterOptions) ([]*entity.Video, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Video
	for _, video := range f.videos {
		if !video.IsPublished {
			continue
		}
		if opts.OwnerID != "" && video.OwnerID != opts.OwnerID {
			continue
		}
		cp := *video
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, int64(len(all)), nil
}

func (f *fakeVideoRepo) ListByOwner(_ context.Context, ownerID string, pagination contract.Pagination) ([]*entity.Video, int64, error) {
	videos, err := f.AllByOwner(context.Background(), ownerID)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(videos))
	start := (pagination.Page - 1) * pagination.PageSize
	if start >= len(videos) {
		return nil, total, nil
	}
	end := start + pagination.PageSize
	if end > len(videos) {
		end = len(videos)
	}
	return videos[start:end], total, nil
}

func (f *fakeVideoRepo) AllByOwner(_ context.Context, ownerID string) ([]*entity.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Video
	for _, video := range f.videos {
		if video.OwnerID == ownerID {
			cp := *video
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeVideoRepo) UpdateFields(_ context.Context, videoID string, updates map[string]interface{}) (*entity.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	video, ok := f.videos[videoID]
	if !ok {
		return nil, apperr.NotFound("video not found")
	}
	if title, ok := updates["title"].(string); ok {
		video.Title = title
	}
	if description, ok := updates["description"].(string); ok {
		video.Description = description
	}
	if published, ok := updates["is_published"].(bool); ok {
		video.IsPublished = published
	}
	if updatedAt, ok := updates["updated_at"].(time.Time); ok {
		video.UpdatedAt = updatedAt
	}
	cp := *video
	return &cp, nil
}

func (f *fakeVideoRepo) Delete(_ context.Context, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.videos[videoID]; !ok {
		return apperr.NotFound("video not found")
	}
	delete(f.videos, videoID)
	return nil
}
