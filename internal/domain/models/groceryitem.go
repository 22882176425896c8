// internal/domain/models/groceryitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroceryItem is one line of a member's grocery list. Items are always
// owned; every read path filters by UserID.
//
// ExpiryDate is a pointer because many items legitimately have no expiry
// (rice, tins, spices). A nil expiry is stored as an absent field and must
// never be turned into a zero date on the way in or out.
type GroceryItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name           string             `bson:"name" json:"name"`
	NameCI         string             `bson:"name_ci" json:"name_ci"` // lowercase, diacritics-stripped
	Quantity       int                `bson:"quantity" json:"quantity"`
	IsRefrigerated bool               `bson:"is_refrigerated" json:"is_refrigerated"`
	PurchaseDate   time.Time          `bson:"purchase_date" json:"purchase_date"`
	ExpiryDate     *time.Time         `bson:"expiry_date,omitempty" json:"expiry_date,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// HasExpiry reports whether the item carries a real expiry date.
func (g *GroceryItem) HasExpiry() bool {
	return g.ExpiryDate != nil && !g.ExpiryDate.IsZero()
}
