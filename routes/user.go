package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/tarkangur/task-project/controllers/user"
	"github.com/tarkangur/task-project/middleware"
)

// SetupUserRoutes registers the "/users/*" endpoints. Registration is the
// one public write; everything else requires a principal.
func SetupUserRoutes(v1 *gin.RouterGroup, deps Deps) {
	v1.POST("/users", userControllers.Register(deps.DB))

	users := v1.Group("/users")
	users.Use(middleware.ValidateToken)
	{
		users.GET("", userControllers.List(deps.DB, deps.Responses))
		users.GET("/:id", userControllers.Detail(deps.DB, deps.Responses))
		users.PUT("/:id", userControllers.Update(deps.DB))
		users.DELETE("/:id", userControllers.Delete(deps.DB))
	}
}
