package controllers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes Mount the JSON API on the engine. Both groups run behind the
// per-request database session.
func RegisterRoutes(r *gin.Engine, store UploadStore) {
	projects := r.Group("/projects")
	projects.Use(SessionMiddleware())
	{
		projects.GET("/", FindProjects)
		projects.POST("/", CreateProject)
		projects.GET("/:id", FindProject)
		projects.GET("/:id/images", FindProjectImages)
		projects.POST("/:id/images", UploadImages(store))
		projects.GET("/:id/tags", FindProjectTags)
		projects.POST("/:id/tags", AddProjectTag)
	}

	images := r.Group("/images")
	images.Use(SessionMiddleware())
	{
		images.GET("/:id/annotations", FindAnnotations)
		images.POST("/:id/annotations", CreateAnnotation)
		images.DELETE("/:id/annotations/:annotation_id", DeleteAnnotation)
	}
}
