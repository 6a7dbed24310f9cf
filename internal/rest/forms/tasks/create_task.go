package tasks

import (
	"encoding/json"
	"io"

	"github.com/buckmanting/todo-tech-test/internal/rest/forms"
	"github.com/buckmanting/todo-tech-test/pkg/rest/response"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// CreateTaskRequest is the client body for task creation. Clients send a full
// task representation including an id and createdAt; only the description is
// taken, the rest is server-assigned.
type CreateTaskRequest struct {
	Description string `json:"description"`
}

type CreateTaskForm struct {
	Description string
}

func NewCreateTaskForm() *CreateTaskForm {
	return &CreateTaskForm{}
}

func (f *CreateTaskForm) ParseAndValidate(c *gin.Context) (forms.Former, response.Error) {
	body, err := io.ReadAll(c.Request.Body)
	defer c.Request.Body.Close()

	if err != nil {
		log.WithError(err).Error("unable to read body")
		return nil, response.NewInternalError()
	}

	var request *CreateTaskRequest
	err = json.Unmarshal(body, &request)
	if err != nil || request == nil {
		ve := response.NewValidationError()
		ve.SetError(response.GeneralErrorKey, response.InvalidRequestStructure, "invalid request structure")

		return nil, ve
	}

	errors := make(map[string]response.ErrorMessage)
	f.validateAndSetDescription(request, errors)

	if len(errors) > 0 {
		return nil, response.NewValidationError(errors)
	}

	return f, nil
}

func (f *CreateTaskForm) ConvertToMap() map[string]interface{} {
	return map[string]interface{}{
		"description": f.Description,
	}
}

func (f *CreateTaskForm) validateAndSetDescription(request *CreateTaskRequest, errors map[string]response.ErrorMessage) {
	if request.Description == "" {
		errors["description"] = response.ErrorMessage{
			Code:    response.MissedValue,
			Message: "missed value",
		}
		return
	}

	f.Description = request.Description
}
