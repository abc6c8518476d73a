package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tagbox/models"
)

// FindAnnotations List all annotations of an image with their tags.
// An unknown image id yields an empty list.
func FindAnnotations(c *gin.Context) {
	var annotations []models.Annotation
	err := session(c).Preload("Tag").
		Where("image_id = ?", c.Param("id")).
		Find(&annotations).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeServerError, err)
		return
	}

	views := make([]AnnotationView, 0, len(annotations))
	for _, annotation := range annotations {
		views = append(views, annotationView(annotation))
	}
	c.JSON(http.StatusOK, views)
}

type CreateAnnotationInput struct {
	X      *float64 `json:"x" binding:"required"`
	Y      *float64 `json:"y" binding:"required"`
	Width  *float64 `json:"width" binding:"required"`
	Height *float64 `json:"height" binding:"required"`
	Tag    struct {
		Name string `json:"name" binding:"required"`
	} `json:"tag" binding:"required"`
}

// CreateAnnotation Create a bounding box on an image, resolving the tag name
// to the shared vocabulary first
func CreateAnnotation(c *gin.Context) {
	db := session(c)
	imageID := c.Param("id")

	var image models.Image
	if err := db.First(&image, "id = ?", imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "Image not found")
		} else {
			respondError(c, http.StatusInternalServerError, codeServerError, err)
		}
		return
	}

	var input CreateAnnotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, codeValidation, err)
		return
	}

	tag, err := models.ResolveTag(db, input.Tag.Name)
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeServerError, err)
		return
	}

	annotation := models.Annotation{
		ID:      uuid.NewString(),
		ImageID: imageID,
		TagID:   tag.ID,
		X:       *input.X,
		Y:       *input.Y,
		Width:   *input.Width,
		Height:  *input.Height,
	}
	if err := db.Create(&annotation).Error; err != nil {
		respondError(c, http.StatusInternalServerError, codeServerError, err)
		return
	}

	annotation.Tag = tag
	c.JSON(http.StatusOK, annotationView(annotation))
}

// DeleteAnnotation Delete an annotation scoped to its parent image. The image
// id must match, so an annotation cannot be removed through another image's
// URL.
func DeleteAnnotation(c *gin.Context) {
	db := session(c)

	var annotation models.Annotation
	err := db.Where("id = ? AND image_id = ?", c.Param("annotation_id"), c.Param("id")).
		First(&annotation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "Annotation not found for the specified image")
		} else {
			respondError(c, http.StatusInternalServerError, codeServerError, err)
		}
		return
	}

	if err := db.Delete(&annotation).Error; err != nil {
		respondError(c, http.StatusInternalServerError, codeServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
