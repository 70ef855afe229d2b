package orders

import (
	"fmt"
	"regexp"

	"nextshop/models"
	"nextshop/pricing"
)

// Payment method tags accepted at checkout.
const (
	PaymentCOD        = "cod"
	PaymentUPI        = "upi"
	PaymentCard       = "card"
	PaymentNetBanking = "netbanking"
)

var paymentMethods = map[string]bool{
	PaymentCOD:        true,
	PaymentUPI:        true,
	PaymentCard:       true,
	PaymentNetBanking: true,
}

var orderStatuses = map[string]bool{
	models.OrderPending:    true,
	models.OrderConfirmed:  true,
	models.OrderProcessing: true,
	models.OrderShipped:    true,
	models.OrderDelivered:  true,
	models.OrderCancelled:  true,
}

var phonePattern = regexp.MustCompile(`^[0-9+\-\s]{7,15}$`)

// StatusForPayment gives the initial order status: cash on delivery
// starts pending, everything else goes straight to processing. This is
// a label only; no payment capture happens here.
func StatusForPayment(method string) string {
	if method == PaymentCOD {
		return models.OrderPending
	}
	return models.OrderProcessing
}

func ValidPaymentMethod(method string) bool {
	return paymentMethods[method]
}

func ValidOrderStatus(status string) bool {
	return orderStatuses[status]
}

// ValidateShipping checks the address block. Phone is optional but must
// look like a phone number when present.
func ValidateShipping(info models.ShippingInfo) error {
	switch {
	case info.FullName == "":
		return fmt.Errorf("full name is required")
	case info.Address == "":
		return fmt.Errorf("address is required")
	case info.City == "":
		return fmt.Errorf("city is required")
	case info.State == "":
		return fmt.Errorf("state is required")
	case info.Pincode == "":
		return fmt.Errorf("pincode is required")
	}
	if info.Phone != "" && !phonePattern.MatchString(info.Phone) {
		return fmt.Errorf("phone number is not valid")
	}
	return nil
}

// validShippingMethod rejects unknown tags and the free method when the
// subtotal has not reached the threshold.
func validShippingMethod(method string, subtotal float64, shipping models.ShippingConfig) error {
	switch method {
	case pricing.ShippingStandard, pricing.ShippingExpress:
		return nil
	case pricing.ShippingFree:
		if !pricing.FreeShippingEligible(subtotal, shipping) {
			return fmt.Errorf("order does not qualify for free shipping")
		}
		return nil
	default:
		return fmt.Errorf("unknown shipping method %q", method)
	}
}
