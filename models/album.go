package models

type Album struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	UserID uint   `gorm:"index;not null"`
	Title  string `gorm:"size:150;not null"`

	Photos []Photo `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
}

// Photo is owned transitively through its album.
type Photo struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	AlbumID      uint   `gorm:"index;not null"`
	Title        string `gorm:"size:150;not null"`
	URL          string `gorm:"not null"`
	ThumbnailURL string
}
