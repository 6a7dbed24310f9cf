package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/buckmanting/todo-tech-test/internal/config"
	"github.com/buckmanting/todo-tech-test/internal/rest/handlers"
	tasksrv "github.com/buckmanting/todo-tech-test/internal/services/tasks"
	"github.com/buckmanting/todo-tech-test/internal/storage/memory"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	envLocal        = "local"
	shutdownTimeout = 5 * time.Second
)

// App owns the HTTP server and all process-wide state. Restart clears the
// stores; nothing is persisted.
type App struct {
	Done chan struct{}

	log *logrus.Entry
	cfg *config.Config
	srv *http.Server
}

func New(cfg *config.Config, log *logrus.Entry) (*App, error) {
	if cfg.Env != envLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	users := memory.NewUserDirectory()
	tasks := memory.NewTaskStore()
	service := tasksrv.New(tasks, users)

	handlers.NewTaskHandler(service, log.Logger).EnrichRoutes(router)
	handlers.NewUserHandler(users, log.Logger).EnrichRoutes(router)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		Done: make(chan struct{}),
		log:  log,
		cfg:  cfg,
		srv:  srv,
	}, nil
}

// Run starts the HTTP server and closes Done after a graceful shutdown
// triggered by SIGINT or SIGTERM.
func (a *App) Run() {
	go func() {
		a.log.WithField("address", a.cfg.Address).Info("http server started")

		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.WithError(err).Error("http server stopped unexpectedly")
		}
	}()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		a.log.Info("shutting down http server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.srv.Shutdown(ctx); err != nil {
			a.log.WithError(err).Error("failed to shut down http server")
		}

		close(a.Done)
	}()
}
