package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/666amost/mitrabuana/controllers/order"
	productcontroller "github.com/666amost/mitrabuana/controllers/product"
	shippingController "github.com/666amost/mitrabuana/controllers/shipping"
)

// SetupCatalogRoutes registers the public storefront reads: catalog,
// shipping quotes, public tracking and invoice lookup.
func SetupCatalogRoutes(r *gin.Engine, deps Deps) {
	r.GET("/products", productcontroller.GetProducts(deps.Store))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.Store))
	r.GET("/categories", productcontroller.GetAllCategories(deps.Store))

	shippingGroup := r.Group("/shipping")
	{
		shippingGroup.GET("/rates", shippingController.GetRatesHandler())
		shippingGroup.POST("/estimate", shippingController.EstimateHandler())
	}

	// Public "lacak resi" lookup by airway bill
	r.GET("/track/:awb", orderControllers.TrackByAWBHandler(deps.Store))

	// Resolve an order id to its invoice PDF
	r.GET("/invoice/:orderID", orderControllers.InvoiceRedirectHandler(deps.Store))
}
