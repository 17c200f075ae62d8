package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/reelmatch/backend/internal/client"
	"github.com/reelmatch/backend/internal/controller"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/repository"
	"github.com/reelmatch/backend/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := dto.LoadConfig()

	// TranslateError lets the repositories detect duplicate-key violations
	// portably, which both the session token retry and the vote idempotency
	// path rely on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logrus.Panic(err)
	}

	clients := client.NewClients(cfg)
	defer clients.BrokerClient().Close()

	repositories := repository.NewRepositories(db)
	services := service.NewServices(repositories, cfg, clients)
	controllers := controller.NewControllers(services)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	controllers.Route(e)

	logrus.Infof("Starting server on port %s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logrus.Panic(err)
	}
}
