package serializer

import "github.com/tarkangur/task-project/models"

type PostOut struct {
	UserID uint   `json:"userId"`
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type PostIn struct {
	Title string `json:"title" binding:"required,max=150"`
	Body  string `json:"body" binding:"required"`
}

func PostToExternal(p models.Post) PostOut {
	return PostOut{UserID: p.UserID, ID: p.ID, Title: p.Title, Body: p.Body}
}

func PostApply(p *models.Post, in PostIn) {
	p.Title = in.Title
	p.Body = in.Body
}

type CommentOut struct {
	PostID uint   `json:"postId"`
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// CommentIn names the parent as "post", not "postId": the Id-suffixed form
// is output-only. Presence of the parent reference is enforced by the
// create guard, not by a binding tag, because updates ignore it.
type CommentIn struct {
	Post  uint   `json:"post"`
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
	Body  string `json:"body" binding:"required"`
}

func CommentToExternal(c models.Comment) CommentOut {
	return CommentOut{PostID: c.PostID, ID: c.ID, Name: c.Name, Email: c.Email, Body: c.Body}
}

// CommentApply never writes PostID; the owning reference is immutable after
// create.
func CommentApply(c *models.Comment, in CommentIn) {
	c.Name = in.Name
	c.Email = in.Email
	c.Body = in.Body
}
