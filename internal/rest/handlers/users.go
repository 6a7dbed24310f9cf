package handlers

import (
	"net/http"

	"github.com/buckmanting/todo-tech-test/internal/rest/models"
	"github.com/buckmanting/todo-tech-test/internal/storage"
	"github.com/buckmanting/todo-tech-test/pkg/rest/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type User struct {
	log   *logrus.Entry
	users storage.UserDirectory
}

func NewUserHandler(users storage.UserDirectory, log *logrus.Logger) *User {
	return &User{
		log:   logrus.NewEntry(log),
		users: users,
	}
}

func (h *User) EnrichRoutes(router *gin.Engine) {
	router.GET("/currentUser", h.currentUserAction)
}

func (h *User) currentUserAction(c *gin.Context) {
	const op = "handlers.User.currentUserAction"
	log := h.log.WithField("operation", op)
	log.Info("get current user")

	// TODO: take the user id from the client session once it carries one; the
	// stub directory resolves any id to the provisioned user.
	user, err := h.users.Lookup(c.Request.Context(), uuid.New())
	if err != nil {
		log.WithError(err).Errorf("%s: failed to get current user", op)
		response.HandleError(response.NewInternalError(), c)
		return
	}

	c.JSON(http.StatusOK, models.UserFromDomain(user))
}
