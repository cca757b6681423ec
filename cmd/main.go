package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/douglasmelere/daily-diet-api/config"
	"github.com/douglasmelere/daily-diet-api/routes"
)

func main() {
	db, err := config.InitDB()
	if err != nil {
		logrus.WithError(err).Fatal("database initialization failed")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db)
	logrus.WithField("port", port).Info("starting daily-diet api")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
