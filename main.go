package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	uuid "github.com/twinj/uuid"

	"tagbox/controllers"
	"tagbox/models"
	"tagbox/storage"
	"tagbox/utils"
)

// corsMiddleware Use middleware for CORS (Cross-Origin Resource Sharing)
// TODO: This is too broad, cannot expose to the internet!
// CORS for * origins, allowing:
// - GET, POST and DELETE methods
// - Origin header
// - Credentials share
// - Preflight requests cached for 12 hours
func corsMiddleware() gin.HandlerFunc {
	_corsMiddleware := cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"X-Requested-With, Content-Type, Origin, Authorization, Accept, Accept-Encoding"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
	return _corsMiddleware
}

// requestIDMiddleware Generate a UUID and attach it to each request
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_uuid := uuid.NewV4()
		c.Writer.Header().Set("X-Request-Id", _uuid.String())
		c.Next()
	}
}

func main() {
	log.Info("Starting tagbox...")

	// Generate our config based on the config supplied
	// by the user in the flags
	configPath, debugMode, err := utils.ParseFlags()
	if err != nil {
		log.Fatal(err)
	}
	config, err := utils.NewConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Debug mode enables gin-gonic debug mode
	if debugMode == false {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the database, this also creates the schema if absent
	models.ConnectDataBase(config)

	// Content root for the uploaded image blobs
	store, err := storage.NewLocalStore(config.Uploads.Dir)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Version tag to test against
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "v0.0.1",
		})
	})

	// REST API for projects, images, tags and annotations
	// Currently no authentication is used
	controllers.RegisterRoutes(r, store)

	// Serve the uploaded blobs back at the URLs stored on the image rows
	r.Static("/uploads", store.Root())

	addr := fmt.Sprintf(":%s", config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscanll.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall. SIGKILL but can"t be catch, so don't need add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	// catching ctx.Done(). timeout of 1 seconds.
	select {
	case <-ctx.Done():
		log.Info("Timeout of 1 seconds.")
	}

	log.Info("Server exiting")
}
