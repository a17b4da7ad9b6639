package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// respondError maps an action-layer error onto the uniform error envelope.
// Authentication failures map to 401, authorization to 403, missing entities
// to 404, conflicts to 409, validation to 400 and everything else to a
// generic 500 that never leaks the underlying error text.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string][]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			name := strings.ToLower(fieldErr.Field())
			fields[name] = append(fields[name], validationMessage(fieldErr))
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Validation failed.", Errors: fields})
		return
	}

	var appValidation *apperrors.ValidationError
	if errors.As(err, &appValidation) {
		field := appValidation.Field
		if field == "" {
			field = "request"
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed.",
			Errors:  map[string][]string{field: {appValidation.Message}},
		})
		return
	}

	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Not authenticated.",
			Errors:  map[string][]string{"auth": {err.Error()}},
		})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Unauthorized.",
			Errors:  map[string][]string{"auth": {err.Error()}},
		})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Not found.",
			Errors:  map[string][]string{"resource": {err.Error()}},
		})
	case apperrors.IsConflict(err),
		errors.Is(err, apperrors.ErrInvitationExpired),
		errors.Is(err, apperrors.ErrOwnerImmutable),
		errors.Is(err, apperrors.ErrSelfRemoval):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Conflict.",
			Errors:  map[string][]string{"resource": {err.Error()}},
		})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Something went wrong. Please try again later.",
			Errors:  map[string][]string{"system": {"Internal server error"}},
		})
	}
}

// respondBadRequest reports a malformed request body.
func respondBadRequest(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "Validation failed.",
		Errors:  map[string][]string{"body": {"Invalid request body"}},
	})
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	case "min":
		return "Must be at least " + fieldErr.Param()
	case "max":
		return "Must be at most " + fieldErr.Param()
	default:
		return "Invalid value"
	}
}
