package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/666amost/mitrabuana/controllers/order"
	"github.com/666amost/mitrabuana/invoice"
	"github.com/666amost/mitrabuana/storage"
	"github.com/666amost/mitrabuana/store"
)

// Deps carries the shared collaborators; everything is constructed once in
// main and injected here.
type Deps struct {
	Store    *store.Store
	Files    storage.Store
	Invoices *invoice.Generator
	OrderHub *orderControllers.Hub
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public catalog, shipping and tracking routes
	SetupCatalogRoutes(r, deps)

	// Checkout and order routes
	SetupOrderRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Admin routes (admin role or API key)
	SetupAdminRoutes(r, deps)
}
