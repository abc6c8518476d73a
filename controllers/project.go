package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tagbox/models"
)

// FindProjects List all projects with their image counts
func FindProjects(c *gin.Context) {
	var views []ProjectView
	if err := projectViews(session(c)).Scan(&views).Error; err != nil {
		respondError(c, http.StatusInternalServerError, codeServerError, err)
		return
	}
	if views == nil {
		views = []ProjectView{}
	}
	c.JSON(http.StatusOK, views)
}

type CreateProjectInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// CreateProject Create a new project
func CreateProject(c *gin.Context) {
	var input CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, codeValidation, err)
		return
	}

	project := models.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := session(c).Create(&project).Error; err != nil {
		respondError(c, http.StatusInternalServerError, codeServerError, err)
		return
	}

	c.JSON(http.StatusOK, ProjectView{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		ImageCount:  0,
	})
}

// FindProject Find one project with its image count
func FindProject(c *gin.Context) {
	var view ProjectView
	result := projectViews(session(c)).
		Where("projects.id = ?", c.Param("id")).
		Scan(&view)
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, codeServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondNotFound(c, "Project not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

// FindProjectTags List the tag vocabulary of a project
func FindProjectTags(c *gin.Context) {
	var project models.Project
	err := session(c).Preload("Tags").First(&project, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "Project not found")
		} else {
			respondError(c, http.StatusInternalServerError, codeServerError, err)
		}
		return
	}

	if project.Tags == nil {
		project.Tags = []models.Tag{}
	}
	c.JSON(http.StatusOK, project.Tags)
}

type AddProjectTagInput struct {
	Name string `json:"name" binding:"required"`
}

// AddProjectTag Attach a tag to a project, creating the tag if the name is
// new. Re-adding an already-attached tag is a no-op. Responds with the full
// updated tag set.
func AddProjectTag(c *gin.Context) {
	db := session(c)

	var project models.Project
	err := db.Preload("Tags").First(&project, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "Project not found")
		} else {
			respondError(c, http.StatusInternalServerError, codeServerError, err)
		}
		return
	}

	var input AddProjectTagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, codeValidation, err)
		return
	}

	tag, err := models.ResolveTag(db, input.Name)
	if err != nil {
		respondError(c, http.StatusInternalServerError, codeServerError, err)
		return
	}

	attached := false
	for _, existing := range project.Tags {
		if existing.ID == tag.ID {
			attached = true
			break
		}
	}
	if !attached {
		// Append also pushes the value into the preloaded Tags field
		if err := db.Model(&project).Association("Tags").Append(&tag); err != nil {
			respondError(c, http.StatusInternalServerError, codeServerError, err)
			return
		}
	}

	c.JSON(http.StatusOK, project.Tags)
}
