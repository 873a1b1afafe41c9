package commentControllers

import (
	"time"

	"github.com/tarkangur/task-project/models"
	"github.com/tarkangur/task-project/resource"
	"github.com/tarkangur/task-project/serializer"
)

const cacheTTL = 30 * time.Second

// Describe returns the scoped-resource wiring for comments, owned one hop
// away through their post.
func Describe() resource.Descriptor[models.Comment, serializer.CommentIn, serializer.CommentOut] {
	return resource.Descriptor[models.Comment, serializer.CommentIn, serializer.CommentOut]{
		Name:        "comments",
		Table:       "comments",
		Ownership:   resource.OwnedViaParent,
		ParentTable: "posts",
		ParentFK:    "post_id",
		ParentField: "post",
		ToExternal:  serializer.CommentToExternal,
		Apply:       serializer.CommentApply,
		ParentID:    func(in serializer.CommentIn) uint { return in.Post },
		SetParent:   func(m *models.Comment, id uint) { m.PostID = id },
		TTL:         cacheTTL,
	}
}
