package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"nextshop/db"
	"nextshop/models"
	"nextshop/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	LowStockCount int64   `json:"lowStockCount"`
}

// GetStats handles GET /api/admin/stats. Revenue excludes cancelled
// orders; everything else is a straight count.
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var stats Stats
	var err error

	stats.TotalProducts, err = db.ProductsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("GetStats products count error:", err)
		http.Error(w, "Could not compute stats", http.StatusInternalServerError)
		return
	}

	stats.TotalOrders, err = db.OrdersCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("GetStats orders count error:", err)
		http.Error(w, "Could not compute stats", http.StatusInternalServerError)
		return
	}

	stats.PendingOrders, err = db.OrdersCollection.CountDocuments(ctx, bson.M{"status": models.OrderPending})
	if err != nil {
		log.Println("GetStats pending count error:", err)
		http.Error(w, "Could not compute stats", http.StatusInternalServerError)
		return
	}

	stats.LowStockCount, err = db.ProductsCollection.CountDocuments(ctx, bson.M{"stock": bson.M{"$lt": 10}})
	if err != nil {
		log.Println("GetStats low stock count error:", err)
		http.Error(w, "Could not compute stats", http.StatusInternalServerError)
		return
	}

	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$ne": models.OrderCancelled}}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total"}}},
	}
	cursor, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Println("GetStats revenue aggregate error:", err)
		http.Error(w, "Could not compute stats", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		log.Println("GetStats revenue decode error:", err)
		http.Error(w, "Could not compute stats", http.StatusInternalServerError)
		return
	}
	if len(result) > 0 {
		stats.TotalRevenue = result[0].Total
	}

	utils.RespondWithJSON(w, http.StatusOK, stats)
}
