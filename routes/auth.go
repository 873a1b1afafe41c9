package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tarkangur/task-project/auth"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(v1 *gin.RouterGroup, deps Deps) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(deps.DB))
	}
}
