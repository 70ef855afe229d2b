package banners

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nextshop/db"
	"nextshop/models"
	"nextshop/mq"
	"nextshop/rdx"
	"nextshop/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cacheTTL = 5 * time.Minute

// GetBanners handles GET /api/banners: active banners only, optionally
// narrowed by ?position=, highest priority first.
func GetBanners(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	position := r.URL.Query().Get("position")

	cacheKey := "banners:active"
	if position != "" {
		if !validPosition(position) {
			http.Error(w, "Unknown banner position", http.StatusBadRequest)
			return
		}
		cacheKey = "banners:active:" + position
	}

	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	filter := bson.M{"isActive": true}
	if position != "" {
		filter["position"] = position
	}

	opts := options.Find().SetSort(bson.M{"priority": -1})
	cursor, err := db.BannersCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetBanners Find error:", err)
		http.Error(w, "Could not retrieve banners", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Banner
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetBanners cursor.All error:", err)
		http.Error(w, "Error reading banner data", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Banner{}
	}

	if data, err := json.Marshal(list); err == nil {
		rdx.RdxSetWithTTL(cacheKey, string(data), cacheTTL)
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetAllBanners handles GET /api/admin/banners: every banner including
// inactive ones, highest priority first.
func GetAllBanners(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"priority": -1})
	cursor, err := db.BannersCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetAllBanners Find error:", err)
		http.Error(w, "Could not retrieve banners", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Banner
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetAllBanners cursor.All error:", err)
		http.Error(w, "Error reading banner data", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Banner{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

type bannerPayload struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
	Position string `json:"position"`
	IsActive bool   `json:"isActive"`
	Priority int    `json:"priority"`
}

func (p bannerPayload) validate() error {
	if p.Title == "" {
		return errTitleRequired
	}
	if !validPosition(p.Position) {
		return errBadPosition
	}
	return nil
}

var (
	errTitleRequired = jsonError("title is required")
	errBadPosition   = jsonError("position must be hero, sidebar, or footer")
)

type jsonError string

func (e jsonError) Error() string { return string(e) }

func validPosition(position string) bool {
	switch position {
	case models.BannerHero, models.BannerSidebar, models.BannerFooter:
		return true
	}
	return false
}

// CreateBanner handles POST /api/admin/banners.
func CreateBanner(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload bannerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := payload.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	banner := models.Banner{
		BannerID:  "b" + utils.GenerateRandomString(10),
		Title:     payload.Title,
		Subtitle:  payload.Subtitle,
		ImageURL:  payload.ImageURL,
		Link:      payload.Link,
		Position:  payload.Position,
		IsActive:  payload.IsActive,
		Priority:  payload.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.BannersCollection.InsertOne(ctx, banner); err != nil {
		log.Println("CreateBanner InsertOne error:", err)
		http.Error(w, "Failed to create banner", http.StatusInternalServerError)
		return
	}

	go mq.Emit(r.Context(), "banner-created", models.Index{EntityType: "banner", EntityId: banner.BannerID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, banner)
}

// UpdateBanner handles PUT /api/admin/banners/:bannerid.
func UpdateBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bannerID := ps.ByName("bannerid")

	var payload bannerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := payload.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"title":     payload.Title,
		"subtitle":  payload.Subtitle,
		"imageUrl":  payload.ImageURL,
		"link":      payload.Link,
		"position":  payload.Position,
		"isActive":  payload.IsActive,
		"priority":  payload.Priority,
		"updatedAt": time.Now(),
	}}

	res, err := db.BannersCollection.UpdateOne(ctx, bson.M{"bannerid": bannerID}, update)
	if err != nil {
		log.Println("UpdateBanner UpdateOne error:", err)
		http.Error(w, "Failed to update banner", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Banner not found", http.StatusNotFound)
		return
	}

	go mq.Emit(r.Context(), "banner-updated", models.Index{EntityType: "banner", EntityId: bannerID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// DeleteBanner handles DELETE /api/admin/banners/:bannerid.
func DeleteBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bannerID := ps.ByName("bannerid")

	res, err := db.BannersCollection.DeleteOne(ctx, bson.M{"bannerid": bannerID})
	if err != nil {
		log.Println("DeleteBanner DeleteOne error:", err)
		http.Error(w, "Failed to delete banner", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Banner not found", http.StatusNotFound)
		return
	}

	go mq.Emit(r.Context(), "banner-deleted", models.Index{EntityType: "banner", EntityId: bannerID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
