package serializer

import "github.com/tarkangur/task-project/models"

type AlbumOut struct {
	UserID uint   `json:"userId"`
	ID     uint   `json:"id"`
	Title  string `json:"title"`
}

type AlbumIn struct {
	Title string `json:"title" binding:"required,max=150"`
}

func AlbumToExternal(a models.Album) AlbumOut {
	return AlbumOut{UserID: a.UserID, ID: a.ID, Title: a.Title}
}

func AlbumApply(a *models.Album, in AlbumIn) {
	a.Title = in.Title
}

type PhotoOut struct {
	AlbumID      uint   `json:"albumId"`
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// PhotoIn names the parent as "album"; see CommentIn for the convention.
type PhotoIn struct {
	Album        uint   `json:"album"`
	Title        string `json:"title" binding:"required,max=150"`
	URL          string `json:"url" binding:"required,url"`
	ThumbnailURL string `json:"thumbnailUrl" binding:"omitempty,url"`
}

func PhotoToExternal(p models.Photo) PhotoOut {
	return PhotoOut{AlbumID: p.AlbumID, ID: p.ID, Title: p.Title, URL: p.URL, ThumbnailURL: p.ThumbnailURL}
}

func PhotoApply(p *models.Photo, in PhotoIn) {
	p.Title = in.Title
	p.URL = in.URL
	p.ThumbnailURL = in.ThumbnailURL
}
