package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/reelmatch/backend/internal/service"
)

type Controllers interface {
	Session() SessionController
	Match() MatchController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	sessionController SessionController
	matchController   MatchController
	infoController    InfoController
	authService       service.AuthService
}

func NewControllers(services service.Services) Controllers {
	sessionController := newSessionController(services.Session(), services.Feed())
	matchController := newMatchController(services.Match(), services.Feed())
	infoController := newInfoController()
	return &controllers{
		sessionController: sessionController,
		matchController:   matchController,
		infoController:    infoController,
		authService:       services.Auth(),
	}
}

func (c controllers) Session() SessionController {
	return c.sessionController
}

func (c controllers) Match() MatchController {
	return c.matchController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.GET("/", c.infoController.Info)

	api := e.Group("/api", AuthMiddleware(c.authService))
	api.POST("/sessions", c.sessionController.Create)
	api.GET("/sessions/:id", c.sessionController.Get)
	api.GET("/sessions/:id/feed", c.sessionController.Feed)
	api.POST("/sessions/:id/votes", c.matchController.RecordVote)
	api.GET("/sessions/:id/match", c.matchController.CheckSession)
	api.GET("/sessions/:id/candidates/:candidateId/match", c.matchController.CheckCandidate)
}
