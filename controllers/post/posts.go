package postControllers

import (
	"time"

	"github.com/tarkangur/task-project/models"
	"github.com/tarkangur/task-project/resource"
	"github.com/tarkangur/task-project/serializer"
)

const cacheTTL = 30 * time.Second

// Describe returns the scoped-resource wiring for posts.
func Describe() resource.Descriptor[models.Post, serializer.PostIn, serializer.PostOut] {
	return resource.Descriptor[models.Post, serializer.PostIn, serializer.PostOut]{
		Name:       "posts",
		Table:      "posts",
		Ownership:  resource.OwnedDirect,
		ToExternal: serializer.PostToExternal,
		Apply:      serializer.PostApply,
		SetOwner:   func(p *models.Post, owner uint) { p.UserID = owner },
		TTL:        cacheTTL,
	}
}
