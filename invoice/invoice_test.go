package invoice

import (
	"testing"
	"time"

	"nextshop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPDF(t *testing.T) {
	order := models.Order{
		OrderID:       "oTESTORDER1",
		UserID:        "uCUSTOMER1",
		CustomerEmail: "asha@example.com",
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Ceramic Mug", Quantity: 2, Price: 249, Subtotal: 498},
			{ProductID: "p2", Name: "Steel Bottle", Quantity: 1, Price: 799, Subtotal: 799},
		},
		Subtotal:       1297,
		TaxAmount:      64.85,
		ShippingCost:   99,
		ShippingMethod: "standard",
		Total:          1460.85,
		ShippingInfo: models.ShippingInfo{
			FullName: "Asha Rao",
			Address:  "12 MG Road",
			City:     "Bengaluru",
			State:    "Karnataka",
			Pincode:  "560001",
		},
		PaymentMethod: "upi",
		Status:        models.OrderProcessing,
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := Render(order)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderEmptyItems(t *testing.T) {
	data, err := Render(models.Order{OrderID: "oEMPTY", CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
