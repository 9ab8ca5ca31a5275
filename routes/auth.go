package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/auth"
)

func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(deps.Store))
		authGroup.POST("/login", auth.LoginHandler(deps.Store))
	}
}
