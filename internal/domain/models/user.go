// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the profile document that backs the leaderboard and the points
// economy. It is created alongside an Account at signup and looked up by
// email thereafter.
//
// NOTE:
//   - Points only ever grow from this codebase's perspective: the single
//     mutation path adds 10 per published post.
//   - The credential half of a signup lives in the accounts collection
//     (models.Account); a User with no matching Account cannot log in, and
//     an Account with no User shows an empty profile.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	Points     int                `bson:"points" json:"points"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
