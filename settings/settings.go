package settings

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsID = "main"

// Defaults when the store has never been configured: tax off, no free
// shipping, zero rates.
func defaultSettings() models.Settings {
	return models.Settings{
		ID:       settingsID,
		Tax:      models.TaxConfig{Rate: 0, Enabled: false},
		Shipping: models.ShippingConfig{},
		Revision: 0,
	}
}

// Validate checks the bounds of a settings payload.
func Validate(s models.Settings) error {
	if s.Tax.Rate < 0 || s.Tax.Rate > 100 {
		return fmt.Errorf("tax rate must be between 0 and 100")
	}
	if s.Shipping.FreeShippingThreshold < 0 {
		return fmt.Errorf("free shipping threshold must not be negative")
	}
	if s.Shipping.StandardRate < 0 || s.Shipping.ExpressRate < 0 {
		return fmt.Errorf("shipping rates must not be negative")
	}
	return nil
}

// Current fetches the settings snapshot used by checkout. A missing
// document yields the defaults, not an error.
func Current(ctx context.Context) (models.Settings, error) {
	var s models.Settings
	err := db.SettingsCollection.FindOne(ctx, bson.M{"_id": settingsID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return defaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return s, nil
}

// GetSettings handles GET /api/settings.
func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	s, err := Current(ctx)
	if err != nil {
		log.Println("GetSettings error:", err)
		http.Error(w, "Failed to fetch settings", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s)
}

// SaveSettings handles POST /api/admin/settings. The caller must echo
// the revision it last read; a stale revision is rejected with 409 so
// concurrent admin edits surface instead of overwriting each other.
func SaveSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload models.Settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := Validate(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := bson.M{
		"$set": bson.M{
			"tax":       payload.Tax,
			"shipping":  payload.Shipping,
			"updatedAt": time.Now(),
		},
		"$inc": bson.M{"revision": 1},
	}

	guard := saveGuard(payload.Revision)
	opts := options.Update().SetUpsert(guard.Upsert)

	res, err := db.SettingsCollection.UpdateOne(ctx, guard.Filter, update, opts)
	if err != nil {
		// Two concurrent first-time saves race the upsert; the loser
		// hits the _id unique index and must see a conflict, not a 500.
		if mongo.IsDuplicateKeyError(err) {
			http.Error(w, "Settings were modified by another session; reload and retry", http.StatusConflict)
			return
		}
		log.Println("SaveSettings UpdateOne error:", err)
		http.Error(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}
	if staleWrite(res.MatchedCount, res.UpsertedCount) {
		http.Error(w, "Settings were modified by another session; reload and retry", http.StatusConflict)
		return
	}

	go mq.Emit(r.Context(), "settings-updated", models.Index{EntityType: "settings", EntityId: settingsID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"revision": guard.Next,
	})
}

// revisionGuard pins a settings write to the revision the caller last
// read. Upsert is only allowed for the very first write (revision 0);
// after that a missing match means the document moved underneath us.
type revisionGuard struct {
	Filter bson.M
	Upsert bool
	Next   int64
}

func saveGuard(revision int64) revisionGuard {
	return revisionGuard{
		Filter: bson.M{"_id": settingsID, "revision": revision},
		Upsert: revision == 0,
		Next:   revision + 1,
	}
}

// staleWrite reports whether a guarded update touched nothing: no
// existing document matched the revision and no upsert happened.
func staleWrite(matched, upserted int64) bool {
	return matched == 0 && upserted == 0
}
