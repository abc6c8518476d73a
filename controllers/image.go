package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tagbox/models"
)

// UploadStore What the upload handler needs from the content store.
// storage.LocalStore satisfies it.
type UploadStore interface {
	Save(name string, r io.Reader) error
	Remove(name string) error
}

// FindProjectImages List a project's images with annotations and tags.
// An unknown project id yields an empty list, not a 404.
func FindProjectImages(c *gin.Context) {
	views, err := projectImages(session(c), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeServerError, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// UploadImages Ingest a batch of multipart files for a project. Blobs go to
// the content store under a fresh identifier, rows are created in the request
// session and commit together. The batch is all-or-none: any storage failure
// removes the blobs written so far and no rows are kept. Responds with every
// image of the project, not only the new ones.
func UploadImages(store UploadStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := session(c)
		projectID := c.Param("id")

		var project models.Project
		if err := db.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondNotFound(c, "Project not found")
			} else {
				respondError(c, http.StatusInternalServerError, codeServerError, err)
			}
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			respondError(c, http.StatusBadRequest, codeValidation, err)
			return
		}
		files := form.File["files"]

		written := make([]string, 0, len(files))
		discard := func() {
			for _, name := range written {
				if err := store.Remove(name); err != nil {
					log.WithError(err).Warn("Cannot discard upload")
				}
			}
		}

		rows := make([]models.Image, 0, len(files))
		for _, file := range files {
			id := uuid.NewString()
			storedName := id + filepath.Ext(file.Filename)

			src, err := file.Open()
			if err != nil {
				discard()
				respondError(c, http.StatusInternalServerError, codeStorage, err)
				return
			}
			saveErr := store.Save(storedName, src)
			src.Close()
			if saveErr != nil {
				discard()
				respondError(c, http.StatusInternalServerError, codeStorage, saveErr)
				return
			}
			written = append(written, storedName)

			rows = append(rows, models.Image{
				ID:        id,
				ProjectID: projectID,
				URL:       fmt.Sprintf("/uploads/%s", storedName),
				Filename:  file.Filename,
			})
		}

		if len(rows) > 0 {
			if err := db.Create(&rows).Error; err != nil {
				discard()
				respondError(c, http.StatusInternalServerError, codeServerError, err)
				return
			}
		}

		views, err := projectImages(db, projectID)
		if err != nil {
			discard()
			respondError(c, http.StatusInternalServerError, codeServerError, err)
			return
		}
		c.JSON(http.StatusOK, views)
	}
}
