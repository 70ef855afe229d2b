package models

import "time"

// TaxConfig controls checkout tax computation. Rate is a percentage in
// [0,100] applied to the cart subtotal when Enabled.
type TaxConfig struct {
	Rate    float64 `json:"rate" bson:"rate"`
	Enabled bool    `json:"enabled" bson:"enabled"`
}

// ShippingConfig holds the flat shipping rates. Shipping is free once
// the subtotal reaches FreeShippingThreshold.
type ShippingConfig struct {
	FreeShippingThreshold float64 `json:"freeShippingThreshold" bson:"freeShippingThreshold"`
	StandardRate          float64 `json:"standardRate" bson:"standardRate"`
	ExpressRate           float64 `json:"expressRate" bson:"expressRate"`
}

// Settings is the store-wide singleton ("main"). Revision increments on
// every write so concurrent admin edits are detected instead of silently
// overwritten.
type Settings struct {
	ID        string         `json:"-" bson:"_id"`
	Tax       TaxConfig      `json:"tax" bson:"tax"`
	Shipping  ShippingConfig `json:"shipping" bson:"shipping"`
	Revision  int64          `json:"revision" bson:"revision"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}
