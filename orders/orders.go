package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nextshop/db"
	"nextshop/models"
	"nextshop/mq"
	"nextshop/orderfeed"
	"nextshop/pricing"
	"nextshop/settings"
	"nextshop/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type checkoutRequest struct {
	CustomerEmail  string              `json:"customerEmail"`
	ShippingInfo   models.ShippingInfo `json:"shippingInfo"`
	ShippingMethod string              `json:"shippingMethod"`
	PaymentMethod  string              `json:"paymentMethod"`
}

// PlaceOrder handles POST /api/orders. It prices the caller's cart
// against the current settings snapshot, persists the order with all
// amounts frozen, and clears the cart only after the insert succeeds.
func PlaceOrder(hub *orderfeed.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		userID := utils.GetUserIDFromRequest(r)
		if userID == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}

		if req.PaymentMethod == "" {
			http.Error(w, "Payment method is required", http.StatusBadRequest)
			return
		}
		if !ValidPaymentMethod(req.PaymentMethod) {
			http.Error(w, "Unknown payment method", http.StatusBadRequest)
			return
		}
		if err := ValidateShipping(req.ShippingInfo); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.ShippingMethod == "" {
			req.ShippingMethod = pricing.ShippingStandard
		}

		// Cart snapshot
		cursor, err := db.CartCollection.Find(ctx, bson.M{"userId": userID})
		if err != nil {
			log.Println("PlaceOrder cart Find error:", err)
			http.Error(w, "Could not read cart", http.StatusInternalServerError)
			return
		}
		var items []models.CartItem
		if err := cursor.All(ctx, &items); err != nil {
			log.Println("PlaceOrder cart decode error:", err)
			http.Error(w, "Could not read cart", http.StatusInternalServerError)
			return
		}
		if len(items) == 0 {
			http.Error(w, "Cart is empty", http.StatusBadRequest)
			return
		}

		// Settings snapshot
		cfg, err := settings.Current(ctx)
		if err != nil {
			log.Println("PlaceOrder settings error:", err)
			http.Error(w, "Could not load store settings", http.StatusInternalServerError)
			return
		}

		quote := pricing.BuildQuote(items, cfg, req.ShippingMethod)
		if err := validShippingMethod(req.ShippingMethod, quote.Subtotal, cfg.Shipping); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			orderItems = append(orderItems, models.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				Price:     it.Price,
				Subtotal:  it.Price * float64(it.Quantity),
			})
		}

		now := time.Now()
		order := models.Order{
			OrderID:        "o" + utils.GenerateRandomString(10),
			UserID:         userID,
			CustomerEmail:  req.CustomerEmail,
			Items:          orderItems,
			Subtotal:       quote.Subtotal,
			TaxAmount:      quote.TaxAmount,
			ShippingCost:   quote.ShippingCost,
			ShippingMethod: req.ShippingMethod,
			Total:          quote.Total,
			ShippingInfo:   req.ShippingInfo,
			PaymentMethod:  req.PaymentMethod,
			Status:         StatusForPayment(req.PaymentMethod),
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
			// Cart stays intact so the user can retry.
			log.Println("PlaceOrder InsertOne error:", err)
			http.Error(w, "Failed to place order", http.StatusInternalServerError)
			return
		}

		if _, err := db.CartCollection.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
			log.Printf("Cart clear failed for %s after order %s: %v", userID, order.OrderID, err)
		}

		decrementStock(ctx, orderItems)

		go mq.Emit(r.Context(), "order-created", models.Index{EntityType: "order", EntityId: order.OrderID, Method: "POST"})
		hub.Broadcast(orderfeed.Event{Type: "order_created", OrderID: order.OrderID, Status: order.Status, Total: order.Total})

		utils.RespondWithJSON(w, http.StatusCreated, order)
	}
}

// decrementStock applies best-effort stock decrements, one guarded
// update per line. A line whose product is missing or short on stock is
// logged and skipped; the order stands either way.
func decrementStock(ctx context.Context, items []models.OrderItem) {
	for _, it := range items {
		res, err := db.ProductsCollection.UpdateOne(ctx,
			bson.M{"productid": it.ProductID, "stock": bson.M{"$gte": it.Quantity}},
			bson.M{"$inc": bson.M{"stock": -it.Quantity}, "$set": bson.M{"updatedAt": time.Now()}},
		)
		if err != nil {
			log.Printf("Stock decrement failed for %s: %v", it.ProductID, err)
			continue
		}
		if res.MatchedCount == 0 {
			log.Printf("Stock decrement skipped for %s: not found or insufficient stock", it.ProductID)
		}
	}
}

// GetOrders handles GET /api/orders: the caller's orders newest first,
// or a single order via ?orderId= (owner or admin only).
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if orderID := r.URL.Query().Get("orderId"); orderID != "" {
		var order models.Order
		err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		} else if err != nil {
			log.Println("GetOrders FindOne error:", err)
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		if order.UserID != userID && !isAdmin(r) {
			http.Error(w, "You are not authorized to view this order", http.StatusForbidden)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, order)
		return
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.OrdersCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("GetOrders Find error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetOrders cursor.All error:", err)
		http.Error(w, "Error reading order data", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

func isAdmin(r *http.Request) bool {
	for _, role := range utils.GetRolesFromRequest(r) {
		if role == models.RoleAdmin {
			return true
		}
	}
	return false
}
