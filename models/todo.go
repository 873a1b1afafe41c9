package models

type Todo struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"index;not null"`
	Title     string `gorm:"size:150;not null"`
	Completed bool   `gorm:"default:false"`
}
