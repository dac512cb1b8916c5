package team

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	responses "github.com/DhavalSuthar-24/livescore/pkg/matchresponse"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// --- DTOs ---

// CreateTeamRequest registers a team with its batting order.
type CreateTeamRequest struct {
	Name    string   `json:"name" binding:"required,min=2,max=100"`
	Players []string `json:"players" binding:"required,min=2,dive,required,max=100"`
}

// NormalizeRoster trims every name and rejects blanks and case-insensitive
// duplicates, since players are assigned by name.
func NormalizeRoster(players []string) ([]string, string) {
	seen := make(map[string]bool, len(players))
	out := make([]string, 0, len(players))
	for _, p := range players {
		name := strings.TrimSpace(p)
		if name == "" {
			return nil, "player names cannot be blank"
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, "player '" + name + "' is listed twice"
		}
		seen[key] = true
		out = append(out, name)
	}
	if len(out) < 2 {
		return nil, "a team needs at least two players"
	}
	return out, ""
}

// --- Team Handlers ---

// CreateTeam godoc
// @Summary Register a team
// @Description Registers a team and its roster. Player order is the batting order.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team name and players"
// @Success 201 {object} map[string]interface{} "Team created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 409 {object} map[string]interface{} "Team name already exists"
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	players, problem := NormalizeRoster(req.Players)
	if problem != "" {
		responses.ErrorResponse(c, http.StatusBadRequest, problem)
		return
	}

	name := strings.TrimSpace(req.Name)
	existing, err := tc.repo.GetTeamByName(c.Request.Context(), name)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to check team name: "+err.Error())
		return
	}
	if existing != nil {
		responses.ErrorResponse(c, http.StatusConflict, "Team name already exists")
		return
	}

	team := Team{Name: name, Players: players}
	if err := tc.repo.CreateTeam(c.Request.Context(), &team); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create team: "+err.Error())
		return
	}
	log.Printf("Registered team %q with %d players", team.Name, len(team.Players))

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Team created successfully",
		"team":    team,
	})
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Tags Teams
// @Produce json
// @Param id path uint true "Team ID"
// @Success 200 {object} map[string]interface{} "Team details"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(c.Request.Context(), uint(teamID))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, team)
}

// GetAllTeams godoc
// @Summary List teams
// @Description Lists registered teams ordered by name, one page at a time. Responds 404 when none are registered.
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" minimum(1) default(1)
// @Param limit query int false "Items per page" minimum(1) maximum(100) default(50)
// @Success 200 {object} map[string]interface{} "Page of teams with pagination details"
// @Failure 404 {object} map[string]interface{} "No teams found"
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	teams, total, err := tc.repo.GetAllTeams(c.Request.Context(), page, limit)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve teams: "+err.Error())
		return
	}
	if total == 0 {
		responses.ErrorResponse(c, http.StatusNotFound, "No teams found")
		return
	}
	responses.PaginatedResponse(c, http.StatusOK, teams, page, limit, total)
}
