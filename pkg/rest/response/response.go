package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const GeneralErrorKey = "general"

const (
	MissedValue             = "missed_value"
	InvalidValue            = "invalid_value"
	InvalidRequestStructure = "invalid_request_structure"
)

type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is a transport-level error: a status code plus an optional JSON body.
type Error interface {
	Status() int
	Body() interface{}
}

// HandleError aborts the request with the error's status and body.
func HandleError(err Error, c *gin.Context) {
	if err.Body() == nil {
		c.AbortWithStatus(err.Status())
		return
	}

	c.AbortWithStatusJSON(err.Status(), err.Body())
}

type ValidationError struct {
	Errors map[string]ErrorMessage `json:"errors"`
}

func NewValidationError(errors ...map[string]ErrorMessage) *ValidationError {
	ve := &ValidationError{Errors: make(map[string]ErrorMessage)}
	for _, messages := range errors {
		for key, message := range messages {
			ve.Errors[key] = message
		}
	}
	return ve
}

func (e *ValidationError) SetError(key string, code string, message string) {
	e.Errors[key] = ErrorMessage{
		Code:    code,
		Message: message,
	}
}

func (e *ValidationError) Status() int {
	return http.StatusBadRequest
}

func (e *ValidationError) Body() interface{} {
	return e
}

type NotFoundError struct {
	Message string `json:"message"`
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Status() int {
	return http.StatusNotFound
}

func (e *NotFoundError) Body() interface{} {
	return e
}

type ForbiddenError struct {
	Message string `json:"message"`
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

func (e *ForbiddenError) Status() int {
	return http.StatusForbidden
}

func (e *ForbiddenError) Body() interface{} {
	return e
}

// InternalError renders as a bare 500 with no body.
type InternalError struct{}

func NewInternalError() *InternalError {
	return &InternalError{}
}

func (e *InternalError) Status() int {
	return http.StatusInternalServerError
}

func (e *InternalError) Body() interface{} {
	return nil
}
