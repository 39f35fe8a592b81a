package entity

import (
	"time"
)

// TargetKind identifies which entity type a Reaction points at.
type TargetKind string

const (
	TargetKindVideo   TargetKind = "video"
	TargetKindComment TargetKind = "comment"
	TargetKindPost    TargetKind = "post"
)

// ParseTargetKind converts a raw string into a TargetKind.
func ParseTargetKind(s string) (TargetKind, bool) {
	switch TargetKind(s) {
	case TargetKindVideo, TargetKindComment, TargetKindPost:
		return TargetKind(s), true
	}
	return "", false
}

// ReactionState is the presence state reported back by a toggle.
type ReactionState string

const (
	ReactionPresent ReactionState = "present"
	ReactionAbsent  ReactionState = "absent"
)

// Reaction represents a user's positive signal toward exactly one target.
// At most one Reaction exists per (user_id, target_kind, target_id) triple;
// the reactions collection carries a unique compound index enforcing this.
type Reaction struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	UserID     string     `bson:"user_id" json:"user_id"`
	TargetKind TargetKind `bson:"target_kind" json:"target_kind"`
	TargetID   string     `bson:"target_id" json:"target_id"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}
