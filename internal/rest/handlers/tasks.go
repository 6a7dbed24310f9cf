package handlers

import (
	"net/http"

	domain "github.com/buckmanting/todo-tech-test/internal/models"
	tasksform "github.com/buckmanting/todo-tech-test/internal/rest/forms/tasks"
	"github.com/buckmanting/todo-tech-test/internal/rest/models"
	tasksrv "github.com/buckmanting/todo-tech-test/internal/services/tasks"
	"github.com/buckmanting/todo-tech-test/pkg/rest/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Task struct {
	log     *logrus.Entry
	service *tasksrv.Service
}

func NewTaskHandler(service *tasksrv.Service, log *logrus.Logger) *Task {
	return &Task{
		log:     logrus.NewEntry(log),
		service: service,
	}
}

func (h *Task) EnrichRoutes(router *gin.Engine) {
	taskRoutes := router.Group("/tasks")
	taskRoutes.GET("/:userID", h.listTasksAction)
	taskRoutes.GET("/:userID/:taskID", h.getTaskAction)
	taskRoutes.POST("/:userID/create", h.createTaskAction)
	taskRoutes.PUT("/:userID/:taskID/update", h.updateTaskAction)
	taskRoutes.DELETE("/:userID/:taskID/delete", h.deleteTaskAction)
}

func (h *Task) listTasksAction(c *gin.Context) {
	const op = "handlers.Task.listTasksAction"
	log := h.log.WithField("operation", op)
	log.Info("list tasks")

	userID, verr := parseIDParam(c, "userID")
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to list tasks", op)
		response.HandleError(response.ResolveError(err), c)
		return
	}

	c.JSON(http.StatusOK, models.TasksFromDomain(tasks))
}

func (h *Task) getTaskAction(c *gin.Context) {
	const op = "handlers.Task.getTaskAction"
	log := h.log.WithField("operation", op)
	log.Info("get task")

	userID, verr := parseIDParam(c, "userID")
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	taskID, verr := parseIDParam(c, "taskID")
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		log.WithError(err).Errorf("%s: failed to get task", op)
		response.HandleError(response.ResolveError(err), c)
		return
	}

	c.JSON(http.StatusOK, models.TaskFromDomain(task))
}

func (h *Task) createTaskAction(c *gin.Context) {
	const op = "handlers.Task.createTaskAction"
	log := h.log.WithField("operation", op)
	log.Info("create task")

	userID, verr := parseIDParam(c, "userID")
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	form, verr := tasksform.NewCreateTaskForm().ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), userID, domain.NewTask{
		Description: form.(*tasksform.CreateTaskForm).Description,
	})
	if err != nil {
		log.WithError(err).Errorf("%s: failed to create task", op)
		response.HandleError(response.ResolveError(err), c)
		return
	}

	c.JSON(http.StatusCreated, models.TaskFromDomain(task))
}

func (h *Task) updateTaskAction(c *gin.Context) {
	const op = "handlers.Task.updateTaskAction"
	log := h.log.WithField("operation", op)
	log.Info("update task")

	userID, verr := parseIDParam(c, "userID")
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	taskID, verr := parseIDParam(c, "taskID")
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	form, verr := tasksform.NewUpdateTaskForm().ParseAndValidate(c)
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), userID, taskID, domain.Task{
		ID:          form.(*tasksform.UpdateTaskForm).ID,
		Description: form.(*tasksform.UpdateTaskForm).Description,
		Done:        form.(*tasksform.UpdateTaskForm).Done,
	})
	if err != nil {
		log.WithError(err).Errorf("%s: failed to update task", op)
		response.HandleError(response.ResolveError(err), c)
		return
	}

	c.JSON(http.StatusOK, models.TaskFromDomain(task))
}

func (h *Task) deleteTaskAction(c *gin.Context) {
	const op = "handlers.Task.deleteTaskAction"
	log := h.log.WithField("operation", op)
	log.Info("delete task")

	userID, verr := parseIDParam(c, "userID")
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	taskID, verr := parseIDParam(c, "taskID")
	if verr != nil {
		response.HandleError(verr, c)
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		log.WithError(err).Errorf("%s: failed to delete task", op)
		response.HandleError(response.ResolveError(err), c)
		return
	}

	c.Status(http.StatusOK)
}

// parseIDParam rejects malformed identifiers before the service is invoked.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, response.Error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		ve := response.NewValidationError()
		ve.SetError(name, response.InvalidValue, "invalid identifier")
		return uuid.Nil, ve
	}

	return id, nil
}
