package todoControllers

import (
	"time"

	"github.com/tarkangur/task-project/models"
	"github.com/tarkangur/task-project/resource"
	"github.com/tarkangur/task-project/serializer"
)

// Todos carry a short list/detail TTL; a fresh todo stays invisible in the
// cached list until it lapses.
const cacheTTL = 30 * time.Second

// Describe returns the scoped-resource wiring for todos.
func Describe() resource.Descriptor[models.Todo, serializer.TodoIn, serializer.TodoOut] {
	return resource.Descriptor[models.Todo, serializer.TodoIn, serializer.TodoOut]{
		Name:       "todos",
		Table:      "todos",
		Ownership:  resource.OwnedDirect,
		ToExternal: serializer.TodoToExternal,
		Apply:      serializer.TodoApply,
		SetOwner:   func(t *models.Todo, owner uint) { t.UserID = owner },
		TTL:        cacheTTL,
	}
}
