package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/666amost/mitrabuana/controllers/admin"
	productcontroller "github.com/666amost/mitrabuana/controllers/product"
	"github.com/666amost/mitrabuana/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the admin
// role or a service API key.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(deps.Store))
	{
		adminGroup.GET("/stats", adminController.GetDashboardStats(deps.Store))
		adminGroup.GET("/users", adminController.GetAllUsers(deps.Store))
		adminGroup.PUT("/users/:userID/role", adminController.SetUserRole(deps.Store))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.Store, deps.Files))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.Store, deps.Files))
			productAdmin.GET("", productcontroller.GetProducts(deps.Store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.Store))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.Store))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Store))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(deps.Store))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(deps.Store))
			categoryAdmin.GET("", productcontroller.GetAllCategories(deps.Store))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(deps.Store))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminController.GetAllOrders(deps.Store))
			orderAdmin.GET("/ws", deps.OrderHub.Handler)
			orderAdmin.GET("/:orderID", adminController.GetOrder(deps.Store))
			orderAdmin.PUT("/:orderID/status", adminController.UpdateOrderStatus(deps.Store))
			orderAdmin.PUT("/:orderID/tracking", adminController.UpdateTracking(deps.Store))
			orderAdmin.POST("/:orderID/regenerate-invoice",
				adminController.RegenerateInvoice(deps.Store, deps.Invoices))
		}
	}
}
