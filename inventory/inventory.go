package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"nextshop/db"
	"nextshop/models"
	"nextshop/mq"
	"nextshop/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const lowStockThreshold = 10

// UpdateStock handles PUT /api/admin/inventory with body
// {productId, stock}. Stock is an absolute value, not a delta.
func UpdateStock(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string `json:"productId"`
		Stock     *int   `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" || payload.Stock == nil {
		http.Error(w, "productId and stock are required", http.StatusBadRequest)
		return
	}
	if *payload.Stock < 0 {
		http.Error(w, "Stock cannot be negative", http.StatusBadRequest)
		return
	}

	res, err := db.ProductsCollection.UpdateOne(ctx,
		bson.M{"productid": payload.ProductID},
		bson.M{"$set": bson.M{"stock": *payload.Stock, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("UpdateStock UpdateOne error:", err)
		http.Error(w, "Failed to update stock", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	go mq.Emit(r.Context(), "stock-updated", models.Index{EntityType: "product", EntityId: payload.ProductID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"productId": payload.ProductID, "stock": *payload.Stock})
}

// GetLowStock handles GET /api/admin/inventory/low-stock: products whose
// stock has fallen below the reorder threshold, lowest first.
func GetLowStock(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"stock": 1})
	cursor, err := db.ProductsCollection.Find(ctx, bson.M{"stock": bson.M{"$lt": lowStockThreshold}}, opts)
	if err != nil {
		log.Println("GetLowStock Find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetLowStock cursor.All error:", err)
		http.Error(w, "Error reading product data", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// DownloadTemplate handles GET /api/admin/inventory/template: a CSV
// pre-filled with every product id and its current stock, ready to edit
// and upload back.
func DownloadTemplate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.ProductsCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"productid": 1}))
	if err != nil {
		log.Println("DownloadTemplate Find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Println("DownloadTemplate cursor.All error:", err)
		http.Error(w, "Error reading product data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory-template.csv"`)
	fmt.Fprintln(w, "productId,stock")
	for _, p := range products {
		fmt.Fprintf(w, "%s,%d\n", p.ProductID, p.Stock)
	}
}
