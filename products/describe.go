package products

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"nextshop/utils"

	"github.com/julienschmidt/httprouter"
)

// Terms too generic to describe a product from the title alone.
var ambiguousTerms = []string{"thing", "item", "product", "stuff", "device"}

var categoryTemplates = map[string]string{
	"electronics": "Experience cutting-edge technology with the %s. This premium %s device combines innovative features with reliable performance, making it perfect for both professional and personal use.",
	"clothing":    "Discover style and comfort with the %s. This fashionable %s piece is crafted from high-quality materials and designed to complement your wardrobe with timeless elegance.",
	"books":       "Immerse yourself in the world of %s. This captivating %s offers engaging content that will educate, entertain, and inspire readers of all backgrounds.",
	"home":        "Transform your living space with the %s. This versatile %s item combines functionality with aesthetic appeal to enhance your home environment.",
	"sports":      "Elevate your athletic performance with the %s. This professional-grade %s equipment is designed for durability and optimal performance in any sporting activity.",
}

// isAmbiguousTitle reports whether the title is too generic to describe
// directly: generic terms, very short titles, or a missing category.
func isAmbiguousTitle(title, category string) bool {
	lower := strings.ToLower(title)
	for _, term := range ambiguousTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return len(title) < 3 || category == ""
}

// describeProduct builds marketing copy for a product. Unambiguous
// titles get a short generic blurb; ambiguous ones fall back to the
// per-category template, or a default when the category is unknown.
func describeProduct(title, category string) string {
	if !isAmbiguousTitle(title, category) {
		return fmt.Sprintf("High-quality %s in the %s category. Perfect for everyday use with excellent durability and performance.", title, category)
	}
	if tpl, ok := categoryTemplates[category]; ok {
		return fmt.Sprintf(tpl, title, category)
	}
	return fmt.Sprintf("Discover the exceptional quality of %s. This premium %s product is designed to meet your needs with outstanding performance and reliability.", title, category)
}

// GenerateDescription handles POST /api/admin/generate-description
// with body {title, category} and returns suggested description text.
func GenerateDescription(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		Title    string `json:"title"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"description": describeProduct(payload.Title, payload.Category),
	})
}
