package tasks

import (
	"encoding/json"
	"io"

	"github.com/buckmanting/todo-tech-test/internal/rest/forms"
	"github.com/buckmanting/todo-tech-test/pkg/rest/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// UpdateTaskRequest is the full task representation the client sends back on
// update. Description and Done are copied verbatim (an empty description is
// allowed here, unlike on create); the id is only checked against the URL,
// owner and timestamps are ignored.
type UpdateTaskRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

type UpdateTaskForm struct {
	ID          uuid.UUID
	Description string
	Done        bool
}

func NewUpdateTaskForm() *UpdateTaskForm {
	return &UpdateTaskForm{}
}

func (f *UpdateTaskForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	var request *UpdateTaskRequest
	err = json.Unmarshal(body, &request)
	if err != nil || request == nil {
		ve := response.NewValidationError()
		ve.SetError(response.GeneralErrorKey, response.InvalidRequestStructure, "invalid request structure")

		return nil, ve
	}

	errors := make(map[string]response.ErrorMessage)
	f.validateAndSetID(request, errors)
	f.Description = request.Description
	f.Done = request.Done

	if len(errors) > 0 {
		return nil, response.NewValidationError(errors)
	}

	return f, nil
}

func (f *UpdateTaskForm) ConvertToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":          f.ID,
		"description": f.Description,
		"done":        f.Done,
	}
}

func (f *UpdateTaskForm) validateAndSetID(request *UpdateTaskRequest, errors map[string]response.ErrorMessage) {
	if request.ID == "" {
		errors["id"] = response.ErrorMessage{
			Code:    response.MissedValue,
			Message: "missed value",
		}
		return
	}

	id, err := uuid.Parse(request.ID)
	if err != nil {
		errors["id"] = response.ErrorMessage{
			Code:    response.InvalidValue,
			Message: "invalid identifier",
		}
		return
	}

	f.ID = id
}
