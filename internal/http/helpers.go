package http

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/services"
)

// --- Response Types ---

// ErrorResponse is the body of every 500 response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a single client-facing message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse lists one message per missing field, in field order.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// --- Error Response Helpers ---

// respondServiceError maps a service error to its status code and body.
// Untyped errors are logged with the request id and answered with fallback.
func respondServiceError(c *gin.Context, err error, fallback string) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) || svcErr.Kind == services.KindInternal {
		respondInternalError(c, err, fallback)
		return
	}

	switch svcErr.Kind {
	case services.KindValidation:
		c.JSON(http.StatusBadRequest, ValidationResponse{Errors: svcErr.Errors})
	case services.KindNotFound:
		c.JSON(http.StatusNotFound, MessageResponse{Message: svcErr.Message})
	default:
		c.JSON(http.StatusBadRequest, MessageResponse{Message: svcErr.Message})
	}
}

// respondInternalError logs the error and sends a 500 response with message.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, message string) {
	log.Printf("Internal error (%s) request_id=%s: %v", message, c.GetString(ContextKeyRequestID), err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// respondBadRequest sends a 400 response with a single message.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}

// --- Request Parsing ---

// bindJSON decodes the request body into obj. An empty body leaves obj
// untouched so that field validation reports what is missing. Malformed JSON
// is answered with 400 and bindJSON returns false.
func bindJSON(c *gin.Context, obj any) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ValidationResponse{Errors: []string{services.MsgInvalidBody}})
		return false
	}
	return true
}

// parseIDParam reads an unsigned integer id from the URL path.
// present is false only when the parameter is empty. Values that are not
// positive integers come back as 0, which never matches a stored record.
func parseIDParam(c *gin.Context, paramName string) (id uint, present bool) {
	idStr := c.Param(paramName)
	if idStr == "" {
		return 0, false
	}
	parsed, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, true
	}
	return uint(parsed), true
}
