package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tagbox/models"
)

const sessionKey = "tagbox_session"

// bufferedWriter Holds the handler's body back until the session outcome is
// known. Status and headers still go to the embedded writer, but nothing hits
// the wire before flush, so a late failure can still change the status.
type bufferedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *bufferedWriter) flush() error {
	if w.body.Len() == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(w.body.Bytes())
	return err
}

// SessionMiddleware Open one database transaction per request and hand it to
// the handlers through the gin context. The transaction commits when the
// handler answered with a success status and rolls back otherwise, so a
// request never leaves a half-applied mutation behind. The response body is
// buffered until the commit went through; a commit failure turns into a 5xx
// instead of reporting a mutation that never persisted. A panic rolls back
// before gin's recovery turns it into a 500.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tx := models.DB.WithContext(c.Request.Context()).Begin()
		if tx.Error != nil {
			respondError(c, http.StatusInternalServerError, codeServerError, tx.Error)
			c.Abort()
			return
		}

		writer := &bufferedWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				c.Writer = writer.ResponseWriter
				panic(r)
			}
		}()

		c.Set(sessionKey, tx)
		c.Next()
		c.Writer = writer.ResponseWriter

		if writer.Status() >= http.StatusBadRequest {
			tx.Rollback()
		} else if err := tx.Commit().Error; err != nil {
			log.WithError(err).Error("Session commit failed")
			respondError(c, http.StatusInternalServerError, codeServerError, err)
			return
		}

		if err := writer.flush(); err != nil {
			log.WithError(err).Warn("Cannot write response")
		}
	}
}

// session The request-scoped transaction opened by SessionMiddleware
func session(c *gin.Context) *gorm.DB {
	return c.MustGet(sessionKey).(*gorm.DB)
}
