package match

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	responses "github.com/DhavalSuthar-24/livescore/pkg/matchresponse"
	"github.com/gin-gonic/gin"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	service *MatchService
}

// NewMatchController creates a new match controller
func NewMatchController(service *MatchService) *MatchController {
	return &MatchController{service: service}
}

// --- DTOs for requests ---

// CreateMatchRequest schedules a match between two registered teams.
type CreateMatchRequest struct {
	Team1      string `json:"team1" binding:"required,max=100"`
	Team2      string `json:"team2" binding:"required,max=100"`
	Overs      int    `json:"overs" binding:"required,min=1,max=50"`
	TossWinner string `json:"tossWinner"`
}

// UpdateTossRequest records the toss result. CurrentBattingTeam is "team1" or "team2".
type UpdateTossRequest struct {
	Toss               string `json:"toss" binding:"required"`
	CurrentBattingTeam string `json:"currentBattingTeam" binding:"required"`
}

// SetPlayersRequest names players for any of the three slots.
type SetPlayersRequest struct {
	Striker    string `json:"striker"`
	NonStriker string `json:"nonStriker"`
	Bowler     string `json:"bowler"`
}

// BallEventRequest is one delivery as the scorer enters it.
type BallEventRequest struct {
	Event          string `json:"event"`
	WicketType     string `json:"wicketType"`
	RunsOnWicket   int    `json:"runsOnWicket"`
	AdditionalRuns int    `json:"additionalRuns"`
}

func parseMatchID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid match ID")
		return 0, false
	}
	return uint(id), true
}

// --- Match Handlers ---

// CreateMatch godoc
// @Summary Schedule a match
// @Description Creates a match between two registered teams. The toss winner bats first.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Teams, overs and toss winner"
// @Success 201 {object} map[string]interface{} "Match created"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security ApiKeyAuth
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	state, err := mc.service.ScheduleMatch(c.Request.Context(), ScheduleRequest{
		Team1:      req.Team1,
		Team2:      req.Team2,
		Overs:      req.Overs,
		TossWinner: req.TossWinner,
	})
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, state)
}

// GetMatch godoc
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param id path uint true "Match ID"
// @Success 200 {object} scoring.MatchState
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	state, err := mc.service.GetMatch(c.Request.Context(), id)
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, state)
}

// GetAllMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Success 200 {array} scoring.MatchState
// @Router /matches [get]
func (mc *MatchController) GetAllMatches(c *gin.Context) {
	states, err := mc.service.ListMatches(c.Request.Context())
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, states)
}

// UpdateToss godoc
// @Summary Record the toss
// @Description Sets the toss winner and the batting side. Rejected once a ball has been recorded.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path uint true "Match ID"
// @Param toss body UpdateTossRequest true "Toss winner and batting side"
// @Success 200 {object} scoring.MatchState
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 409 {object} map[string]interface{} "Toss can no longer change"
// @Security ApiKeyAuth
// @Router /matches/{id} [patch]
func (mc *MatchController) UpdateToss(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	var req UpdateTossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	state, err := mc.service.DecideToss(c.Request.Context(), id, req.Toss, req.CurrentBattingTeam)
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, state)
}

// SetPlayers godoc
// @Summary Assign players
// @Description Fills the bowler, striker and non-striker slots, in that order.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path uint true "Match ID"
// @Param players body SetPlayersRequest true "Player names"
// @Success 200 {object} scoring.MatchState
// @Failure 400 {object} map[string]interface{} "Invalid or out-of-order player"
// @Security ApiKeyAuth
// @Router /matches/{id}/setPlayers [post]
func (mc *MatchController) SetPlayers(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	var req SetPlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	state, err := mc.service.AssignPlayers(c.Request.Context(), id, scoring.Assignment{
		Bowler:     req.Bowler,
		Striker:    req.Striker,
		NonStriker: req.NonStriker,
	})
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, state)
}

// RecordBall godoc
// @Summary Record a delivery
// @Description Applies one ball: a run count, Wide, No Ball or Wicket.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path uint true "Match ID"
// @Param ball body BallEventRequest true "Ball event"
// @Success 200 {object} map[string]interface{} "Updated match and outcome"
// @Failure 400 {object} map[string]interface{} "Invalid event"
// @Failure 409 {object} map[string]interface{} "Players not set or innings completed"
// @Security ApiKeyAuth
// @Router /matches/{id}/update [post]
func (mc *MatchController) RecordBall(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	var req BallEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	ev, err := scoring.ParseEvent(req.Event, req.WicketType, req.RunsOnWicket, req.AdditionalRuns)
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	state, outcome, err := mc.service.ApplyBall(c.Request.Context(), id, ev)
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"match":   state,
		"outcome": outcome,
	})
}

// UndoBall godoc
// @Summary Undo the last delivery
// @Tags Matches
// @Produce json
// @Param id path uint true "Match ID"
// @Success 200 {object} scoring.MatchState
// @Failure 409 {object} map[string]interface{} "Nothing to undo"
// @Security ApiKeyAuth
// @Router /matches/{id}/ball [delete]
func (mc *MatchController) UndoBall(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	state, err := mc.service.UndoBall(c.Request.Context(), id)
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, state)
}

// ResetMatch godoc
// @Summary Reset a match
// @Description Clears scores, figures and history. The toss decision is kept.
// @Tags Matches
// @Produce json
// @Param id path uint true "Match ID"
// @Success 200 {object} scoring.MatchState
// @Security ApiKeyAuth
// @Router /matches/{id}/reset [post]
func (mc *MatchController) ResetMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	state, err := mc.service.ResetMatch(c.Request.Context(), id)
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, state)
}

// ResetAllMatches godoc
// @Summary Reset every match
// @Tags Matches
// @Produce json
// @Success 200 {object} map[string]interface{} "Matches reset"
// @Security ApiKeyAuth
// @Router /matches/resetAll [post]
func (mc *MatchController) ResetAllMatches(c *gin.Context) {
	states, err := mc.service.ResetAllMatches(c.Request.Context())
	if err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "All matches reset successfully",
		"count":   len(states),
	})
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags Matches
// @Produce json
// @Param id path uint true "Match ID"
// @Success 200 {object} map[string]interface{} "Match deleted"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security ApiKeyAuth
// @Router /matches/{id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	if err := mc.service.DeleteMatch(c.Request.Context(), id); err != nil {
		responses.ScoringErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Match deleted successfully"})
}
