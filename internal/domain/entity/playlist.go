package entity

import (
	"time"
)

// Playlist is a named, owned, ordered collection of video references.
// VideoIDs keeps insertion order and never holds duplicates. OwnerID is
// immutable after creation.
type Playlist struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	OwnerID     string    `bson:"owner_id" json:"owner_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	VideoIDs    []string  `bson:"videos" json:"videos"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
