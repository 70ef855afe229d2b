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
	"nextshop/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAllOrders handles GET /api/admin/orders: every order, newest first.
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.OrdersCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetAllOrders Find error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetAllOrders cursor.All error:", err)
		http.Error(w, "Error reading order data", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// UpdateOrderStatus handles PUT /api/admin/orders with body
// {orderId, status}. The status must be one of the known tags.
func UpdateOrderStatus(hub *orderfeed.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var payload struct {
			OrderID string `json:"orderId"`
			Status  string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
			return
		}
		if payload.OrderID == "" || payload.Status == "" {
			http.Error(w, "orderId and status are required", http.StatusBadRequest)
			return
		}
		if !ValidOrderStatus(payload.Status) {
			http.Error(w, "Unknown order status", http.StatusBadRequest)
			return
		}

		res, err := db.OrdersCollection.UpdateOne(ctx,
			bson.M{"orderId": payload.OrderID},
			bson.M{"$set": bson.M{"status": payload.Status, "updatedAt": time.Now()}},
		)
		if err != nil {
			log.Println("UpdateOrderStatus UpdateOne error:", err)
			http.Error(w, "Failed to update order", http.StatusInternalServerError)
			return
		}
		if res.MatchedCount == 0 {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}

		go mq.Emit(r.Context(), "order-status-changed", models.Index{EntityType: "order", EntityId: payload.OrderID, Method: "PUT"})
		hub.Broadcast(orderfeed.Event{Type: "status_changed", OrderID: payload.OrderID, Status: payload.Status})

		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}
