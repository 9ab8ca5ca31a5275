package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/666amost/mitrabuana/controllers/order"
	"github.com/666amost/mitrabuana/middleware"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	// Checkout is public; a valid token attaches the order to the account.
	r.POST("/orders", middleware.OptionalToken,
		orderControllers.CheckoutHandler(deps.Store, deps.Invoices, deps.OrderHub))
}
