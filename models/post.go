package models

type Post struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	UserID uint   `gorm:"index;not null"`
	Title  string `gorm:"size:150;not null"`
	Body   string `gorm:"not null"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// Comment is owned transitively: its effective owner is the owning user of
// its post.
type Comment struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	PostID uint   `gorm:"index;not null"`
	Name   string `gorm:"size:100;not null"`
	Email  string `gorm:"not null"`
	Body   string `gorm:"not null"`
}
