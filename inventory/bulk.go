package inventory

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nextshop/db"
	"nextshop/models"
	"nextshop/mq"
	"nextshop/utils"

	"github.com/gocarina/gocsv"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// stockRow is one line of the bulk upload CSV. Both fields are read as
// strings so a blank cell can be told apart from a zero.
type stockRow struct {
	ProductID string `csv:"productId"`
	Stock     string `csv:"stock"`
}

type rowResult struct {
	ProductID string `json:"productId"`
	Stock     int    `json:"stock,omitempty"`
	Outcome   string `json:"outcome"` // "applied", "skipped", "failed"
	Reason    string `json:"reason,omitempty"`
}

type bulkReport struct {
	Applied int         `json:"applied"`
	Skipped int         `json:"skipped"`
	Failed  int         `json:"failed"`
	Rows    []rowResult `json:"rows"`
}

// BulkUpdateStock handles POST /api/admin/inventory/bulk: a multipart
// upload with a "file" field holding a productId,stock CSV. Rows missing
// either value are skipped; the rest are applied independently, so one
// bad row never blocks the others.
func BulkUpdateStock(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "CSV file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var rows []*stockRow
	if err := gocsv.Unmarshal(file, &rows); err != nil {
		http.Error(w, "Could not parse CSV: "+err.Error(), http.StatusBadRequest)
		return
	}

	report := processStockRows(rows, func(productID string, stock int) error {
		res, err := db.ProductsCollection.UpdateOne(ctx,
			bson.M{"productid": productID},
			bson.M{"$set": bson.M{"stock": stock, "updatedAt": time.Now()}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return errProductNotFound
		}
		return nil
	})

	if report.Applied > 0 {
		go mq.Emit(r.Context(), "stock-bulk-updated", models.Index{EntityType: "product", Method: "POST"})
	}

	utils.RespondWithJSON(w, http.StatusOK, report)
}

var errProductNotFound = notFoundError{}

type notFoundError struct{}

func (notFoundError) Error() string { return "product not found" }

// processStockRows walks the parsed rows in order and calls apply for
// each usable one. A row is usable when both productId and stock are
// present and stock parses as a non-negative integer.
func processStockRows(rows []*stockRow, apply func(productID string, stock int) error) bulkReport {
	report := bulkReport{Rows: []rowResult{}}
	for _, row := range rows {
		id := strings.TrimSpace(row.ProductID)
		raw := strings.TrimSpace(row.Stock)
		if id == "" || raw == "" {
			report.Skipped++
			report.Rows = append(report.Rows, rowResult{ProductID: id, Outcome: "skipped", Reason: "missing productId or stock"})
			continue
		}
		stock, err := strconv.Atoi(raw)
		if err != nil || stock < 0 {
			report.Skipped++
			report.Rows = append(report.Rows, rowResult{ProductID: id, Outcome: "skipped", Reason: "stock must be a non-negative integer"})
			continue
		}
		if err := apply(id, stock); err != nil {
			log.Printf("Bulk stock update failed for %s: %v", id, err)
			report.Failed++
			report.Rows = append(report.Rows, rowResult{ProductID: id, Stock: stock, Outcome: "failed", Reason: err.Error()})
			continue
		}
		report.Applied++
		report.Rows = append(report.Rows, rowResult{ProductID: id, Stock: stock, Outcome: "applied"})
	}
	return report
}
