package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"ActorsMoviesAPI/internal/logging"
	"ActorsMoviesAPI/internal/models"
)

const (
	msgInternal     = "Internal server error"
	msgInvalidInput = "Invalid input"
	msgInvalidJSON  = "Invalid input, check JSON format and types"
)

// ErrorHandler turns the last error attached with c.Error into the response.
// Handlers only attach errors; no other code writes error bodies.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		ginErr := c.Errors.Last()
		status, body := errorResponse(ginErr)

		logger := logging.FromContext(c.Request.Context())
		if status >= http.StatusInternalServerError {
			logger.Error(ginErr.Err, "Request failed", "method", c.Request.Method, "path", c.FullPath())
		} else {
			logger.V(logging.DEBUG).Info("Request rejected", "status", status, "reason", ginErr.Err.Error())
		}
		c.AbortWithStatusJSON(status, body)
	}
}

func errorResponse(ginErr *gin.Error) (int, gin.H) {
	err := ginErr.Err

	if ginErr.IsType(gin.ErrorTypeBind) {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := make(map[string]string, len(validationErrs))
			for _, fe := range validationErrs {
				details[fe.Field()] = fe.Tag()
			}
			return http.StatusBadRequest, gin.H{"error": msgInvalidInput, "details": details}
		}
		return http.StatusBadRequest, gin.H{"error": msgInvalidJSON}
	}

	var domainErr *models.Error
	switch {
	case errors.Is(err, models.ErrValidation) && errors.As(err, &domainErr):
		return http.StatusBadRequest, gin.H{"error": domainErr.Message}
	case errors.Is(err, models.ErrNotFound) && errors.As(err, &domainErr):
		return http.StatusNotFound, gin.H{"error": domainErr.Message}
	default:
		return http.StatusInternalServerError, gin.H{"error": msgInternal}
	}
}

// Recovery answers panics with the generic 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.FromContext(c.Request.Context()).Error(fmt.Errorf("panic: %v", recovered), "Recovered from panic",
			"method", c.Request.Method, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	})
}

// RegisterJSONFieldNames makes validation errors name fields the way clients
// send them ("firstName", not "FirstName").
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
