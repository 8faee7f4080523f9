package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/skill"
)

type SkillHandler struct {
	skillUseCase *skill.SkillUseCase
}

func NewSkillHandler(skillUseCase *skill.SkillUseCase) *SkillHandler {
	return &SkillHandler{
		skillUseCase: skillUseCase,
	}
}

// AddSkillRequest represents the add-skill payload
type AddSkillRequest struct {
	Skill       string `json:"skill" binding:"required"`
	Description string `json:"description"`
}

// UpdateSkillRequest carries the replacement description
type UpdateSkillRequest struct {
	Description string `json:"description"`
}

// AddSkill handles POST /add/skill
// @Summary Add a skill tag
// @Tags skills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddSkillRequest true "Skill data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /add/skill [post]
func (h *SkillHandler) AddSkill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "skill is required", Code: "VALIDATION_FAILED"})
		return
	}

	added, err := h.skillUseCase.AddSkill(c.Request.Context(), userID, domain.SkillName(req.Skill), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":         "Skill added successfully",
		"user_id":     userID,
		"skill":       added.SkillName,
		"description": req.Description,
	})
}

// UpdateSkill handles PUT /update/skill/:skill_name
// @Summary Update a skill description
// @Tags skills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param skill_name path string true "Skill name"
// @Param request body UpdateSkillRequest true "New description"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /update/skill/{skill_name} [put]
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	name := domain.SkillName(c.Param("skill_name"))

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "VALIDATION_FAILED"})
		return
	}

	if err := h.skillUseCase.UpdateSkill(c.Request.Context(), userID, name, req.Description); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":         "Skill updated successfully",
		"user_id":     userID,
		"skill":       name,
		"description": req.Description,
	})
}

// DeleteSkill handles DELETE /delete/skill/:skill_name
// @Summary Remove a skill tag
// @Tags skills
// @Security BearerAuth
// @Produce json
// @Param skill_name path string true "Skill name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /delete/skill/{skill_name} [delete]
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	name := domain.SkillName(c.Param("skill_name"))

	if err := h.skillUseCase.DeleteSkill(c.Request.Context(), userID, name); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":     "Skill deleted successfully",
		"user_id": userID,
		"skill":   name,
	})
}
