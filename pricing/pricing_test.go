package pricing

import (
	"testing"

	"nextshop/models"

	"github.com/stretchr/testify/assert"
)

func item(price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: "p", Price: price, Quantity: qty}
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 0.0, Subtotal(nil))
	assert.Equal(t, 1800.0, Subtotal([]models.CartItem{item(600, 3)}))
	assert.Equal(t, 1250.0, Subtotal([]models.CartItem{item(500, 2), item(125, 2)}))
}

func TestTaxAmount(t *testing.T) {
	assert.Equal(t, 0.0, TaxAmount(2500, models.TaxConfig{Rate: 5, Enabled: false}))
	assert.Equal(t, 125.0, TaxAmount(2500, models.TaxConfig{Rate: 5, Enabled: true}))
	assert.Equal(t, 0.0, TaxAmount(2500, models.TaxConfig{Rate: 0, Enabled: true}))
	assert.Equal(t, 2500.0, TaxAmount(2500, models.TaxConfig{Rate: 100, Enabled: true}))
}

func TestShippingCost(t *testing.T) {
	cfg := models.ShippingConfig{FreeShippingThreshold: 2000, StandardRate: 99, ExpressRate: 199}

	// Below threshold the chosen method's rate applies.
	assert.Equal(t, 99.0, ShippingCost(1800, cfg, ShippingStandard))
	assert.Equal(t, 199.0, ShippingCost(1800, cfg, ShippingExpress))

	// At or above threshold shipping is free regardless of method.
	assert.Equal(t, 0.0, ShippingCost(2000, cfg, ShippingStandard))
	assert.Equal(t, 0.0, ShippingCost(2500, cfg, ShippingExpress))
	assert.Equal(t, 0.0, ShippingCost(2500, cfg, ShippingFree))

	assert.True(t, FreeShippingEligible(2000, cfg))
	assert.False(t, FreeShippingEligible(1999.99, cfg))
}

func TestBuildQuoteStandardBelowThreshold(t *testing.T) {
	// subtotal=1800, tax disabled, threshold=2000, standard=99 → total 1899
	settings := models.Settings{
		Tax:      models.TaxConfig{Rate: 5, Enabled: false},
		Shipping: models.ShippingConfig{FreeShippingThreshold: 2000, StandardRate: 99, ExpressRate: 199},
	}
	q := BuildQuote([]models.CartItem{item(900, 2)}, settings, ShippingStandard)

	assert.Equal(t, 1800.0, q.Subtotal)
	assert.Equal(t, 0.0, q.TaxAmount)
	assert.Equal(t, 99.0, q.ShippingCost)
	assert.Equal(t, 1899.0, q.Total)
}

func TestBuildQuoteTaxedAboveThreshold(t *testing.T) {
	// subtotal=2500, tax 5% enabled, threshold=2000 → tax 125, shipping 0, total 2625
	settings := models.Settings{
		Tax:      models.TaxConfig{Rate: 5, Enabled: true},
		Shipping: models.ShippingConfig{FreeShippingThreshold: 2000, StandardRate: 99, ExpressRate: 199},
	}
	q := BuildQuote([]models.CartItem{item(1250, 2)}, settings, ShippingExpress)

	assert.Equal(t, 2500.0, q.Subtotal)
	assert.Equal(t, 125.0, q.TaxAmount)
	assert.Equal(t, 0.0, q.ShippingCost)
	assert.Equal(t, 2625.0, q.Total)
}

func TestQuoteTotalIdentity(t *testing.T) {
	settings := models.Settings{
		Tax:      models.TaxConfig{Rate: 18, Enabled: true},
		Shipping: models.ShippingConfig{FreeShippingThreshold: 5000, StandardRate: 49, ExpressRate: 149},
	}
	carts := [][]models.CartItem{
		nil,
		{item(1, 1)},
		{item(99.99, 3), item(0.01, 7)},
		{item(4999.99, 1)},
		{item(2500, 2)},
	}
	for _, c := range carts {
		for _, method := range []string{ShippingFree, ShippingStandard, ShippingExpress} {
			q := BuildQuote(c, settings, method)
			assert.Equal(t, q.Subtotal+q.TaxAmount+q.ShippingCost, q.Total)
		}
	}
}
