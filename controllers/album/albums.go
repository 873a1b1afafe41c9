package albumControllers

import (
	"github.com/tarkangur/task-project/models"
	"github.com/tarkangur/task-project/resource"
	"github.com/tarkangur/task-project/serializer"
)

// Albums cache with no per-entry deadline: entries live until capacity
// eviction, matching how the media listings have always behaved.
func Describe() resource.Descriptor[models.Album, serializer.AlbumIn, serializer.AlbumOut] {
	return resource.Descriptor[models.Album, serializer.AlbumIn, serializer.AlbumOut]{
		Name:       "albums",
		Table:      "albums",
		Ownership:  resource.OwnedDirect,
		ToExternal: serializer.AlbumToExternal,
		Apply:      serializer.AlbumApply,
		SetOwner:   func(a *models.Album, owner uint) { a.UserID = owner },
	}
}
