package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"guestbook/config"
	"guestbook/database"
	"guestbook/handlers"
	"guestbook/logger"
	"guestbook/repositories"
	"guestbook/routes"
	"guestbook/security"
	"guestbook/sessions"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables.")
	}

	cfg := config.Load()
	logger.Init(cfg.LogFile)

	if err := run(cfg); err != nil {
		logrus.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	sessionManager := sessions.NewManager(cfg.SecretKey)
	handler := handlers.NewHandler(
		repositories.NewUserRepository(db),
		repositories.NewMessageRepository(db),
		security.NewPBKDF2Hasher(),
		sessionManager,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.SetupRoutes(handler, sessionManager),
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server started on port: %s", cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logrus.Infof("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
