package models

import "time"

// User is the root of every ownership chain. Deleting a user removes all
// owned rows through the CASCADE constraints below (the store enforces the
// cascade, not application code).
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string

	// Flat profile columns; the serializer composes these into the nested
	// address/geo/company objects on the way out.
	Street      string
	Suite       string
	City        string
	Zipcode     string
	GeoLat      float64
	GeoLng      float64
	Phone       string
	Website     string
	CompanyName string

	Todos  []Todo  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Posts  []Post  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Albums []Album `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}
