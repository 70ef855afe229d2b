package models

import "time"

// CartItem represents a single line in the user's cart. Price is the
// unit price captured when the item was added.
type CartItem struct {
	UserID    string    `json:"userId" bson:"userId"`
	ProductID string    `json:"productid" bson:"productid"`
	Name      string    `json:"name" bson:"name"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	Price     float64   `json:"price" bson:"price"`
	ImageURL  string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	AddedAt   time.Time `json:"addedAt" bson:"addedAt"`
}
