package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/reelmatch/backend/internal/client"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/model"
	"github.com/reelmatch/backend/internal/service"
	"github.com/sirupsen/logrus"
)

type MatchController interface {
	RecordVote(c echo.Context) error
	CheckCandidate(c echo.Context) error
	CheckSession(c echo.Context) error
}

type matchController struct {
	matchService service.MatchService
	feedService  service.FeedService
}

func newMatchController(matchService service.MatchService, feedService service.FeedService) MatchController {
	return &matchController{
		matchService: matchService,
		feedService:  feedService,
	}
}

type recordVoteRequest struct {
	CandidateID   uint   `json:"candidateId"`
	CandidateKind string `json:"candidateKind"`
	Value         bool   `json:"value"`
}

type recordVoteResponse struct {
	Accepted bool `json:"accepted"`
}

type matchResponse struct {
	Matched     bool              `json:"matched"`
	CandidateID uint              `json:"candidateId,omitempty"`
	Votes       int32             `json:"votes,omitempty"`
	Candidate   *client.Candidate `json:"candidate,omitempty"`
}

func (mc *matchController) RecordVote(c echo.Context) error {
	var request recordVoteRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}
	if request.CandidateID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "candidateId is required")
	}

	accepted, err := mc.matchService.RecordVote(
		c.Request().Context(),
		c.Param("id"),
		request.CandidateID,
		model.ParseCandidateKind(request.CandidateKind),
		request.Value,
	)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrNotAuthorized):
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
		case errors.Is(err, dto.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		case errors.Is(err, dto.ErrSessionClosed):
			return echo.NewHTTPError(http.StatusConflict, "session is closed")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "could not record vote")
		}
	}

	return c.JSON(http.StatusOK, recordVoteResponse{Accepted: accepted})
}

func (mc *matchController) CheckCandidate(c echo.Context) error {
	candidateID, err := strconv.ParseUint(c.Param("candidateId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid candidate id")
	}

	result := mc.matchService.CheckCandidate(c.Param("id"), uint(candidateID))
	return c.JSON(http.StatusOK, mc.toResponse(c, result))
}

func (mc *matchController) CheckSession(c echo.Context) error {
	result := mc.matchService.CheckSession(c.Param("id"))
	return c.JSON(http.StatusOK, mc.toResponse(c, result))
}

// toResponse enriches a positive match with catalog metadata. A failed lookup
// does not suppress the match; the client still gets the candidate id.
func (mc *matchController) toResponse(c echo.Context, result service.MatchResult) matchResponse {
	response := matchResponse{
		Matched:     result.Matched,
		CandidateID: result.CandidateID,
		Votes:       result.Votes,
	}

	if result.Matched {
		candidate, err := mc.feedService.Resolve(c.Request().Context(), result.CandidateKind, result.CandidateID)
		if err != nil {
			logrus.Errorf("Failed to resolve candidate %d: %v", result.CandidateID, err)
		} else {
			response.Candidate = &candidate
		}
	}

	return response
}
