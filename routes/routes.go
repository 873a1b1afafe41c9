package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tarkangur/task-project/cache"
)

// Deps carries the shared collaborators each route group needs. The
// response cache is injected here rather than reached as a global; it
// lives from process start to shutdown.
type Deps struct {
	DB        *gorm.DB
	Responses *cache.Responses
}

// SetupRoutes is the single entry-point that wires the public auth
// endpoints and the protected /v1 API.
func SetupRoutes(r *gin.Engine, deps Deps) {
	v1 := r.Group("/v1")

	SetupAuthRoutes(v1, deps)
	SetupUserRoutes(v1, deps)
	SetupResourceRoutes(v1, deps)
}
