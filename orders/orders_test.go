package orders

import (
	"testing"

	"nextshop/models"
	"nextshop/pricing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForPayment(t *testing.T) {
	assert.Equal(t, models.OrderPending, StatusForPayment(PaymentCOD))
	assert.Equal(t, models.OrderProcessing, StatusForPayment(PaymentUPI))
	assert.Equal(t, models.OrderProcessing, StatusForPayment(PaymentCard))
	assert.Equal(t, models.OrderProcessing, StatusForPayment(PaymentNetBanking))
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{PaymentCOD, PaymentUPI, PaymentCard, PaymentNetBanking} {
		assert.True(t, ValidPaymentMethod(m))
	}
	assert.False(t, ValidPaymentMethod(""))
	assert.False(t, ValidPaymentMethod("cheque"))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{
		models.OrderPending, models.OrderConfirmed, models.OrderProcessing,
		models.OrderShipped, models.OrderDelivered, models.OrderCancelled,
	} {
		assert.True(t, ValidOrderStatus(s))
	}
	assert.False(t, ValidOrderStatus("returned"))
}

func TestValidateShipping(t *testing.T) {
	full := models.ShippingInfo{
		FullName: "Asha Rao",
		Phone:    "+91 98765 4321",
		Address:  "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
	assert.NoError(t, ValidateShipping(full))

	// Phone is optional.
	noPhone := full
	noPhone.Phone = ""
	assert.NoError(t, ValidateShipping(noPhone))

	badPhone := full
	badPhone.Phone = "not-a-phone"
	assert.Error(t, ValidateShipping(badPhone))

	for _, mutate := range []func(*models.ShippingInfo){
		func(s *models.ShippingInfo) { s.FullName = "" },
		func(s *models.ShippingInfo) { s.Address = "" },
		func(s *models.ShippingInfo) { s.City = "" },
		func(s *models.ShippingInfo) { s.State = "" },
		func(s *models.ShippingInfo) { s.Pincode = "" },
	} {
		info := full
		mutate(&info)
		assert.Error(t, ValidateShipping(info))
	}
}

func TestValidShippingMethod(t *testing.T) {
	cfg := models.ShippingConfig{FreeShippingThreshold: 2000, StandardRate: 99, ExpressRate: 199}

	assert.NoError(t, validShippingMethod(pricing.ShippingStandard, 100, cfg))
	assert.NoError(t, validShippingMethod(pricing.ShippingExpress, 100, cfg))
	assert.Error(t, validShippingMethod("drone", 100, cfg))

	// Free only once the threshold is met.
	assert.Error(t, validShippingMethod(pricing.ShippingFree, 1999, cfg))
	assert.NoError(t, validShippingMethod(pricing.ShippingFree, 2000, cfg))
}
