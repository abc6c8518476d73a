package models

// Annotation An axis-aligned bounding box on one image, labelled with a tag.
// Box units are caller-defined (pixels or normalized) and not validated.
type Annotation struct {
	ID      string  `json:"id" gorm:"primaryKey"`
	ImageID string  `json:"image_id" gorm:"not null"`
	TagID   string  `json:"tag_id" gorm:"not null"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Tag     Tag     `json:"tag" gorm:"foreignKey:TagID"`
}
