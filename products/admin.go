package products

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"nextshop/db"
	"nextshop/filemgr"
	"nextshop/models"
	"nextshop/mq"
	"nextshop/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// productPayload is the admin-facing write schema. ImageURLLegacy
// absorbs the historical "imageURL" spelling so only the canonical
// field is ever persisted.
type productPayload struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	Category       string  `json:"category"`
	ImageURL       string  `json:"imageUrl"`
	ImageURLLegacy string  `json:"imageURL"`
}

func (p *productPayload) normalize() {
	if p.ImageURL == "" && p.ImageURLLegacy != "" {
		p.ImageURL = p.ImageURLLegacy
	}
	p.ImageURLLegacy = ""
}

func (p *productPayload) validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if p.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return nil
}

// CreateProduct handles POST /api/admin/products.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	payload.normalize()
	if err := payload.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	product := models.Product{
		ProductID:   "p" + utils.GenerateRandomString(10),
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Stock:       payload.Stock,
		Category:    payload.Category,
		ImageURL:    payload.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.ProductsCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	go mq.Emit(r.Context(), "product-created", models.Index{EntityType: "product", EntityId: product.ProductID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/admin/products/:productid.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	var payload productPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	payload.normalize()
	if err := payload.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"name":        payload.Name,
		"description": payload.Description,
		"price":       payload.Price,
		"stock":       payload.Stock,
		"category":    payload.Category,
		"imageUrl":    payload.ImageURL,
		"updatedAt":   time.Now(),
	}}

	res, err := db.ProductsCollection.UpdateOne(ctx, bson.M{"productid": productID}, update)
	if err != nil {
		log.Println("UpdateProduct UpdateOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	go mq.Emit(r.Context(), "product-edited", models.Index{EntityType: "product", EntityId: productID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteProduct handles DELETE /api/admin/products/:productid.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	res, err := db.ProductsCollection.DeleteOne(ctx, bson.M{"productid": productID})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	go mq.Emit(r.Context(), "product-deleted", models.Index{EntityType: "product", EntityId: productID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// UploadProductImage handles POST /api/admin/products/:productid/image.
// Accepts a multipart form with an "image" field, stores the file and a
// thumbnail, and points the product at the new image.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}
	if files := r.MultipartForm.File["image"]; len(files) > 0 && !utils.ValidateImageFileType(w, files[0]) {
		return
	}

	imagePath, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityProduct)
	if err != nil {
		http.Error(w, fmt.Sprintf("Image upload failed: %v", err), http.StatusBadRequest)
		return
	}
	if imagePath == "" {
		http.Error(w, "No image file uploaded", http.StatusBadRequest)
		return
	}

	res, err := db.ProductsCollection.UpdateOne(ctx,
		bson.M{"productid": productID},
		bson.M{"$set": bson.M{"imageUrl": imagePath, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("UploadProductImage UpdateOne error:", err)
		http.Error(w, "Failed to update product image", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	go mq.Emit(r.Context(), "product-edited", models.Index{EntityType: "product", EntityId: productID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"imageUrl": imagePath})
}
