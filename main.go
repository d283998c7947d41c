package main

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"warbler/auth"
	"warbler/config"
	"warbler/database"
	"warbler/handlers"
	"warbler/logger"
	"warbler/repositories"
	"warbler/routes"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to the database")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 16, // 16 hours
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	hasher := auth.NewBcryptHasher()
	users := repositories.NewUserRepository(db, hasher)
	follows := repositories.NewFollowRepository(db)
	messages := repositories.NewMessageRepository(db)

	h := handlers.New(users, follows, messages, store)
	router := routes.New(h)

	logrus.WithField("port", cfg.Port).Info("Server starting")
	if err := http.ListenAndServe(cfg.Port, router); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
