package models

import "time"

// Order statuses. An order starts as pending (cash on delivery) or
// processing, and is moved along by an admin.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// OrderItem is one product-quantity-price tuple frozen into an order.
type OrderItem struct {
	ProductID string  `json:"productid" bson:"productid"`
	Name      string  `json:"name" bson:"name"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
	Subtotal  float64 `json:"subtotal" bson:"subtotal"`
}

// ShippingInfo holds the delivery address captured at checkout.
type ShippingInfo struct {
	FullName string `json:"fullName" bson:"fullName"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address  string `json:"address" bson:"address"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state" bson:"state"`
	Pincode  string `json:"pincode" bson:"pincode"`
}

// Order is a finalized checkout. All money fields are computed once at
// creation time and never recomputed: Total = Subtotal + TaxAmount +
// ShippingCost.
type Order struct {
	OrderID        string       `json:"orderId" bson:"orderId"`
	UserID         string       `json:"userId" bson:"userId"`
	CustomerEmail  string       `json:"customerEmail" bson:"customerEmail"`
	Items          []OrderItem  `json:"items" bson:"items"`
	Subtotal       float64      `json:"subtotal" bson:"subtotal"`
	TaxAmount      float64      `json:"taxAmount" bson:"taxAmount"`
	ShippingCost   float64      `json:"shippingCost" bson:"shippingCost"`
	ShippingMethod string       `json:"shippingMethod" bson:"shippingMethod"`
	Total          float64      `json:"total" bson:"total"`
	ShippingInfo   ShippingInfo `json:"shippingInfo" bson:"shippingInfo"`
	PaymentMethod  string       `json:"paymentMethod" bson:"paymentMethod"`
	Status         string       `json:"status" bson:"status"`
	CreatedAt      time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt" bson:"updatedAt"`
}
