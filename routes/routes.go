package routes

import (
	"net/http"

	"nextshop/admin"
	"nextshop/auth"
	"nextshop/banners"
	"nextshop/cart"
	"nextshop/inventory"
	"nextshop/invoice"
	"nextshop/middleware"
	"nextshop/orderfeed"
	"nextshop/orders"
	"nextshop/products"
	"nextshop/ratelim"
	"nextshop/settings"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/session", ratelim.RateLimit(auth.CreateSession))
	router.DELETE("/api/session", auth.RevokeSession)
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:productid", products.GetProduct)

	router.POST("/api/admin/products", middleware.AdminOnly(products.CreateProduct))
	router.POST("/api/admin/generate-description", middleware.AdminOnly(products.GenerateDescription))
	router.PUT("/api/admin/products/:productid", middleware.AdminOnly(products.UpdateProduct))
	router.DELETE("/api/admin/products/:productid", middleware.AdminOnly(products.DeleteProduct))
	router.POST("/api/admin/products/:productid/image", middleware.AdminOnly(products.UploadProductImage))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart", middleware.Authenticate(cart.AddToCart))
	router.PUT("/api/cart/:productid", middleware.Authenticate(cart.SetQuantity))
	router.DELETE("/api/cart/:productid", middleware.Authenticate(cart.RemoveFromCart))
	router.DELETE("/api/cart", middleware.Authenticate(cart.ClearCart))
}

func AddOrderRoutes(router *httprouter.Router, hub *orderfeed.Hub) {
	router.POST("/api/orders", ratelim.RateLimit(middleware.Authenticate(orders.PlaceOrder(hub))))
	router.GET("/api/orders", middleware.Authenticate(orders.GetOrders))

	router.GET("/api/admin/orders", middleware.AdminOnly(orders.GetAllOrders))
	router.PUT("/api/admin/orders", middleware.AdminOnly(orders.UpdateOrderStatus(hub)))
	router.GET("/api/admin/orders/feed", middleware.AdminOnly(orderfeed.WebSocketHandler(hub)))
}

func AddInvoiceRoutes(router *httprouter.Router) {
	router.POST("/api/invoice", middleware.Authenticate(invoice.GenerateInvoice))
	router.GET("/api/invoice/:orderid", middleware.Authenticate(invoice.DownloadInvoice))
}

func AddInventoryRoutes(router *httprouter.Router) {
	router.PUT("/api/admin/inventory", middleware.AdminOnly(inventory.UpdateStock))
	router.POST("/api/admin/inventory/bulk", middleware.AdminOnly(inventory.BulkUpdateStock))
	router.GET("/api/admin/inventory/low-stock", middleware.AdminOnly(inventory.GetLowStock))
	router.GET("/api/admin/inventory/template", middleware.AdminOnly(inventory.DownloadTemplate))
}

func AddBannerRoutes(router *httprouter.Router) {
	router.GET("/api/banners", banners.GetBanners)

	router.GET("/api/admin/banners", middleware.AdminOnly(banners.GetAllBanners))
	router.POST("/api/admin/banners", middleware.AdminOnly(banners.CreateBanner))
	router.PUT("/api/admin/banners/:bannerid", middleware.AdminOnly(banners.UpdateBanner))
	router.DELETE("/api/admin/banners/:bannerid", middleware.AdminOnly(banners.DeleteBanner))
	router.POST("/api/admin/banners/:bannerid/image", middleware.AdminOnly(banners.UploadBannerImage))
}

func AddSettingsRoutes(router *httprouter.Router) {
	router.GET("/api/settings", settings.GetSettings)
	router.POST("/api/admin/settings", middleware.AdminOnly(settings.SaveSettings))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/stats", middleware.AdminOnly(admin.GetStats))
}
