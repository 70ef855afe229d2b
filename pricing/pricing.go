package pricing

import "nextshop/models"

// Shipping method tags accepted at checkout.
const (
	ShippingFree     = "free"
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// Quote is the authoritative price breakdown for a cart. Total is
// always exactly Subtotal + TaxAmount + ShippingCost; amounts are kept
// unrounded, two-decimal formatting is a display concern.
type Quote struct {
	Subtotal     float64 `json:"subtotal"`
	TaxAmount    float64 `json:"taxAmount"`
	ShippingCost float64 `json:"shippingCost"`
	Total        float64 `json:"total"`
}

// Subtotal sums unit price times quantity over all cart items.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// TaxAmount applies the configured percentage rate to the subtotal, or
// nothing when tax is disabled.
func TaxAmount(subtotal float64, tax models.TaxConfig) float64 {
	if !tax.Enabled {
		return 0
	}
	return subtotal * tax.Rate / 100
}

// ShippingCost is zero once the subtotal reaches the free-shipping
// threshold, regardless of the chosen method. Below the threshold the
// express rate applies to express, the standard rate to everything else.
func ShippingCost(subtotal float64, shipping models.ShippingConfig, method string) float64 {
	if subtotal >= shipping.FreeShippingThreshold {
		return 0
	}
	if method == ShippingExpress {
		return shipping.ExpressRate
	}
	return shipping.StandardRate
}

// FreeShippingEligible reports whether the free method may be selected.
func FreeShippingEligible(subtotal float64, shipping models.ShippingConfig) bool {
	return subtotal >= shipping.FreeShippingThreshold
}

// BuildQuote derives the full breakdown from a cart and a settings
// snapshot fetched at checkout time.
func BuildQuote(items []models.CartItem, settings models.Settings, shippingMethod string) Quote {
	subtotal := Subtotal(items)
	tax := TaxAmount(subtotal, settings.Tax)
	shipping := ShippingCost(subtotal, settings.Shipping, shippingMethod)
	return Quote{
		Subtotal:     subtotal,
		TaxAmount:    tax,
		ShippingCost: shipping,
		Total:        subtotal + tax + shipping,
	}
}
