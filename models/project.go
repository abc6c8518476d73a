package models

import "time"

// Project A named collection of images with its own tag vocabulary
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	Images      []Image   `json:"-" gorm:"foreignKey:ProjectID"`
	Tags        []Tag     `json:"-" gorm:"many2many:project_tags"`
}
