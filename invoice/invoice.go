package invoice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"nextshop/db"
	"nextshop/models"
	"nextshop/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	billerName    = "NextShop"
	billerAddress = "Plot 42, Industrial Area Phase 2, Bengaluru 560100"
	billerEmail   = "billing@nextshop.example"
)

// GenerateInvoice handles POST /api/invoice: the request body is an
// order document and the response is the rendered PDF. The payload is
// taken as-is; amounts are not recomputed.
func GenerateInvoice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if order.OrderID == "" {
		http.Error(w, "orderId is required", http.StatusBadRequest)
		return
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	pdfBytes, err := Render(order)
	if err != nil {
		log.Println("GenerateInvoice render error:", err)
		http.Error(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// DownloadInvoice handles GET /api/invoice/:orderid. Only the order's
// owner or an admin can pull the PDF.
func DownloadInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID := ps.ByName("orderid")
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Println("DownloadInvoice FindOne error:", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if order.UserID != userID && !hasAdminRole(r) {
		http.Error(w, "You are not authorized to view this invoice", http.StatusForbidden)
		return
	}

	pdfBytes, err := Render(order)
	if err != nil {
		log.Println("DownloadInvoice render error:", err)
		http.Error(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func hasAdminRole(r *http.Request) bool {
	for _, role := range utils.GetRolesFromRequest(r) {
		if role == models.RoleAdmin {
			return true
		}
	}
	return false
}

// Render builds the invoice PDF for an order: biller and customer
// blocks, the line-item table, the totals column, and a QR code
// carrying the order id for quick lookup.
func Render(order models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(40, 10, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, billerName)
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, billerAddress)
	pdf.Ln(5)
	pdf.Cell(0, 5, billerEmail)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, order.ShippingInfo.FullName)
	pdf.Ln(5)
	pdf.Cell(0, 5, order.ShippingInfo.Address)
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("%s, %s %s", order.ShippingInfo.City, order.ShippingInfo.State, order.ShippingInfo.Pincode))
	pdf.Ln(5)
	if order.CustomerEmail != "" {
		pdf.Cell(0, 5, order.CustomerEmail)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Order: %s", order.OrderID))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006")))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Payment: %s", order.PaymentMethod))
	pdf.Ln(10)

	// Line items
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 7, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(90, 7, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", item.Subtotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals column, right-aligned under the table
	writeTotal := func(label string, amount float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(110, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", amount), "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal", order.Subtotal, false)
	writeTotal("Tax", order.TaxAmount, false)
	writeTotal("Shipping", order.ShippingCost, false)
	writeTotal("Total", order.Total, true)

	qrPNG, err := qrcode.Encode(order.OrderID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 250, 30, 30, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
