package controllers

import (
	"time"

	"gorm.io/gorm"

	"tagbox/models"
)

// ProjectView A project with its derived image count
type ProjectView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	ImageCount  int64     `json:"image_count"`
}

// AnnotationView A bounding box with its tag embedded. Tag is null when the
// annotation's tag reference does not resolve.
type AnnotationView struct {
	ID      string      `json:"id"`
	ImageID string      `json:"image_id"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Tag     *models.Tag `json:"tag"`
}

// ImageView An image with its annotations eager-loaded
type ImageView struct {
	ID          string           `json:"id"`
	ProjectID   string           `json:"project_id"`
	URL         string           `json:"url"`
	Filename    string           `json:"filename"`
	CreatedAt   time.Time        `json:"created_at"`
	Annotations []AnnotationView `json:"annotations"`
}

// projectViews Base query for project rows with their image counts. The left
// join keeps projects without images at count 0.
func projectViews(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Project{}).
		Select("projects.id, projects.name, projects.description, projects.created_at, count(images.id) as image_count").
		Joins("left join images on images.project_id = projects.id").
		Group("projects.id")
}

func annotationView(annotation models.Annotation) AnnotationView {
	view := AnnotationView{
		ID:      annotation.ID,
		ImageID: annotation.ImageID,
		X:       annotation.X,
		Y:       annotation.Y,
		Width:   annotation.Width,
		Height:  annotation.Height,
	}
	if annotation.Tag.ID != "" {
		tag := annotation.Tag
		view.Tag = &tag
	}
	return view
}

func imageView(image models.Image) ImageView {
	annotations := make([]AnnotationView, 0, len(image.Annotations))
	for _, annotation := range image.Annotations {
		annotations = append(annotations, annotationView(annotation))
	}
	return ImageView{
		ID:          image.ID,
		ProjectID:   image.ProjectID,
		URL:         image.URL,
		Filename:    image.Filename,
		CreatedAt:   image.CreatedAt,
		Annotations: annotations,
	}
}

// projectImages Fetch every image of a project with annotations and tags in
// one eager-loaded pass, already shaped for the response.
func projectImages(db *gorm.DB, projectID string) ([]ImageView, error) {
	var images []models.Image
	if err := db.Preload("Annotations.Tag").
		Where("project_id = ?", projectID).
		Find(&images).Error; err != nil {
		return nil, err
	}

	views := make([]ImageView, 0, len(images))
	for _, image := range images {
		views = append(views, imageView(image))
	}
	return views, nil
}
