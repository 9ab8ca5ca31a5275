package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/666amost/mitrabuana/controllers/order"
	userControllers "github.com/666amost/mitrabuana/controllers/user"
	"github.com/666amost/mitrabuana/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetProfile(deps.Store))
		userGroup.PUT("/", userControllers.UpdateProfile(deps.Store))

		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(deps.Store))
			orderGroup.GET("/:orderID", orderControllers.GetUserOrderHandler(deps.Store))
			orderGroup.POST("/:orderID/payment-proof",
				orderControllers.UploadPaymentProofHandler(deps.Store, deps.Files))
		}
	}
}
