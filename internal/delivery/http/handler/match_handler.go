package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// CreateMatchRequest represents a match request payload
type CreateMatchRequest struct {
	MatchToID int `json:"match_to_id" binding:"required"`
}

// UpdateMatchRequest carries the new lifecycle status
type UpdateMatchRequest struct {
	MatchStatus string `json:"match_status" binding:"required"`
}

// CreateMatch handles POST /match
// @Summary Send a match request
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateMatchRequest true "Target user"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /match [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	fromID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "match to ID is required", Code: "VALIDATION_FAILED"})
		return
	}

	created, err := h.matchUseCase.CreateMatch(c.Request.Context(), fromID, req.MatchToID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":      "Match request sent successfully",
		"match_id": created.ID,
	})
}

// GetMatch handles GET /match/:match_id
// @Summary Get a match
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} domain.Match
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /match/{match_id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		respondError(c, domain.ErrMatchNotFound)
		return
	}

	m, err := h.matchUseCase.GetMatch(c.Request.Context(), matchID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// UpdateMatch handles PUT /match/:match_id
// @Summary Update match status
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param request body UpdateMatchRequest true "New status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /match/{match_id} [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		respondError(c, domain.ErrMatchNotFound)
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "match_status is required", Code: "VALIDATION_FAILED"})
		return
	}

	if err := h.matchUseCase.UpdateStatus(c.Request.Context(), matchID, userID, domain.MatchStatus(req.MatchStatus)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Match status updated successfully"})
}

// DeleteMatch handles DELETE /match/:match_id
// @Summary Cancel my match request
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /match/{match_id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		respondError(c, domain.ErrMatchNotFound)
		return
	}

	if err := h.matchUseCase.DeleteMatch(c.Request.Context(), matchID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Match request canceled successfully"})
}
