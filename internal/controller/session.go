package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/service"
)

type SessionController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	Feed(c echo.Context) error
}

type sessionController struct {
	sessionService service.SessionService
	feedService    service.FeedService
}

func newSessionController(sessionService service.SessionService, feedService service.FeedService) SessionController {
	return &sessionController{
		sessionService: sessionService,
		feedService:    feedService,
	}
}

type createSessionRequest struct {
	Quorum int `json:"quorum"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	Active    bool   `json:"active"`
	Quorum    int    `json:"quorum"`
}

func (sc *sessionController) Create(c echo.Context) error {
	var request createSessionRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	session, err := sc.sessionService.Create(c.Request().Context(), request.Quorum)
	if err != nil {
		if errors.Is(err, dto.ErrNotAuthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create session")
	}

	return c.JSON(http.StatusCreated, sessionResponse{
		SessionID: session.ID,
		Active:    session.Active,
		Quorum:    session.Quorum,
	})
}

func (sc *sessionController) Get(c echo.Context) error {
	session, err := sc.sessionService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load session")
	}

	return c.JSON(http.StatusOK, sessionResponse{
		SessionID: session.ID,
		Active:    session.Active,
		Quorum:    session.Quorum,
	})
}

func (sc *sessionController) Feed(c echo.Context) error {
	candidates, err := sc.feedService.Candidates(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not load candidate feed")
	}

	return c.JSON(http.StatusOK, candidates)
}
