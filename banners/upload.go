package banners

import (
	"context"
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

// UploadBannerImage handles POST /api/admin/banners/:bannerid/image with
// a multipart "image" field. The stored banner gets the new public path.
func UploadBannerImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	bannerID := ps.ByName("bannerid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}
	if files := r.MultipartForm.File["image"]; len(files) > 0 && !utils.ValidateImageFileType(w, files[0]) {
		return
	}

	path, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityBanner)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if path == "" {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}

	res, err := db.BannersCollection.UpdateOne(ctx,
		bson.M{"bannerid": bannerID},
		bson.M{"$set": bson.M{"imageUrl": path, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("UploadBannerImage UpdateOne error:", err)
		http.Error(w, "Failed to update banner", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Banner not found", http.StatusNotFound)
		return
	}

	go mq.Emit(r.Context(), "banner-updated", models.Index{EntityType: "banner", EntityId: bannerID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"imageUrl": path})
}
