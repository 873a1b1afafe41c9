package photoControllers

import (
	"github.com/tarkangur/task-project/models"
	"github.com/tarkangur/task-project/resource"
	"github.com/tarkangur/task-project/serializer"
)

// Photos are owned through their album and, like albums, cache without a
// per-entry deadline.
func Describe() resource.Descriptor[models.Photo, serializer.PhotoIn, serializer.PhotoOut] {
	return resource.Descriptor[models.Photo, serializer.PhotoIn, serializer.PhotoOut]{
		Name:        "photos",
		Table:       "photos",
		Ownership:   resource.OwnedViaParent,
		ParentTable: "albums",
		ParentFK:    "album_id",
		ParentField: "album",
		ToExternal:  serializer.PhotoToExternal,
		Apply:       serializer.PhotoApply,
		ParentID:    func(in serializer.PhotoIn) uint { return in.Album },
		SetParent:   func(m *models.Photo, id uint) { m.AlbumID = id },
	}
}
