package models

import "time"

// Image An uploaded file belonging to a project, served back at URL
type Image struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	ProjectID   string       `json:"project_id" gorm:"not null"`
	URL         string       `json:"url" gorm:"not null"`
	Filename    string       `json:"filename" gorm:"not null"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
	Annotations []Annotation `json:"annotations" gorm:"foreignKey:ImageID"`
}
