package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes surfaced in the envelope
const (
	codeValidation  = "validation_error"
	codeNotFound    = "not_found"
	codeConflict    = "conflict"
	codeStorage     = "storage_error"
	codeServerError = "server_error"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func respondNotFound(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, codeNotFound, errors.New(message))
}
