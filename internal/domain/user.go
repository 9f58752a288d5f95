package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the tracker. Exercises are embedded in the
// user document and kept in append order; nothing ever re-sorts them.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"` // Should be unique
	Exercises []Exercise         `bson:"exercises,omitempty" json:"exercises,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
