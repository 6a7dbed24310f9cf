package main

import (
	"os"

	"github.com/buckmanting/todo-tech-test/internal/app"
	"github.com/buckmanting/todo-tech-test/internal/config"
	"github.com/buckmanting/todo-tech-test/internal/lib/logger/handlers/logruspretty"
	"github.com/sirupsen/logrus"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env, cfg.LogsPath)

	log.WithField("config", cfg).Info("Application start!")

	application, err := app.New(cfg, log)
	if err != nil {
		panic(err)
	}

	application.Run()

	<-application.Done
	log.Info("Application stopped")
}

func setupLogger(env string, logFilePath string) *logrus.Entry {
	var log = logrus.New()

	if env == envLocal {
		log.SetLevel(logrus.DebugLevel)
		return setupPrettyLog(log)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		panic(err)
	}

	log.SetOutput(logFile)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	switch env {
	case envDev:
		log.SetLevel(logrus.InfoLevel)
	case envProd:
		log.SetLevel(logrus.WarnLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}

	return logrus.NewEntry(log)
}

func setupPrettyLog(log *logrus.Logger) *logrus.Entry {
	prettyHandler := logruspretty.NewPrettyHandler(os.Stdout)
	log.SetFormatter(prettyHandler)
	return logrus.NewEntry(log)
}
