package routes

import (
	"github.com/gin-gonic/gin"

	albumControllers "github.com/tarkangur/task-project/controllers/album"
	commentControllers "github.com/tarkangur/task-project/controllers/comment"
	photoControllers "github.com/tarkangur/task-project/controllers/photo"
	postControllers "github.com/tarkangur/task-project/controllers/post"
	todoControllers "github.com/tarkangur/task-project/controllers/todo"
	"github.com/tarkangur/task-project/middleware"
	"github.com/tarkangur/task-project/resource"
)

// SetupResourceRoutes registers every ownership-scoped resource family
// behind the auth middleware. Each family contributes only its descriptor;
// the engine supplies the handlers.
func SetupResourceRoutes(v1 *gin.RouterGroup, deps Deps) {
	api := v1.Group("")
	api.Use(middleware.ValidateToken)

	resource.Register(api, todoControllers.Describe(), deps.DB, deps.Responses)
	resource.Register(api, postControllers.Describe(), deps.DB, deps.Responses)
	resource.Register(api, commentControllers.Describe(), deps.DB, deps.Responses)
	resource.Register(api, albumControllers.Describe(), deps.DB, deps.Responses)
	resource.Register(api, photoControllers.Describe(), deps.DB, deps.Responses)
}
