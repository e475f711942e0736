package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/logger"
	"finadvisor/internal/middleware"
	"finadvisor/internal/pagination"
)

// MessageResponse represents a simple message response
type MessageResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondOK writes a 200 response with status "success" added to body.
func respondOK(c *gin.Context, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["status"] = "success"
	c.JSON(http.StatusOK, body)
}

// respondMessage writes a success response carrying only a message.
func respondMessage(c *gin.Context, message string) {
	respondOK(c, gin.H{"message": message})
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// bindJSON binds the request body into req. A missing required field is
// reported with requiredMsg; any other validation failure names the field.
func bindJSON(c *gin.Context, req interface{}, requiredMsg string) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	logger.Get().Debugw("request binding failed", "path", c.Request.URL.Path, "error", err.Error())

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() != "required" {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+strings.ToLower(fe.Field())))
			return false
		}
	}
	respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, requiredMsg))
	return false
}

// bindPage reads the optional page and page_size query parameters.
func bindPage(c *gin.Context) (pagination.PageRequest, bool) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid page or page_size"))
		return page, false
	}
	return page, true
}

// listBody renders a list under key, with paging metadata when the client
// asked for a page.
func listBody[T any](key string, resp *pagination.PageResponse[T], paged bool) gin.H {
	body := gin.H{key: resp.Data}
	if paged {
		body["page"] = resp.Page
		body["page_size"] = resp.PageSize
		body["total_items"] = resp.TotalItems
		body["total_pages"] = resp.TotalPages
	}
	return body
}
