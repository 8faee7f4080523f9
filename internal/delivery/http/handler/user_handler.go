package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/account"
)

type UserHandler struct {
	accountUseCase *account.AccountUseCase
}

func NewUserHandler(accountUseCase *account.AccountUseCase) *UserHandler {
	return &UserHandler{
		accountUseCase: accountUseCase,
	}
}

// UpdateUser handles PUT /update_user
// @Summary Update profile
// @Description Update the authenticated user's profile fields
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body account.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /update_user [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req account.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "VALIDATION_FAILED"})
		return
	}

	user, err := h.accountUseCase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "User updated successfully",
		"user": user,
	})
}

// GetProfile handles GET /profile
// @Summary Get my profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.accountUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_data": user})
}

// GetProfileByID handles GET /profile/:user_id (public)
// @Summary Get a user's profile
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /profile/{user_id} [get]
func (h *UserHandler) GetProfileByID(c *gin.Context) {
	// a non-numeric id can never name a user, same as an unknown one
	targetID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		respondError(c, domain.ErrUserNotFound)
		return
	}

	user, err := h.accountUseCase.GetProfile(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_data": user})
}

// ListUsers handles GET /users
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} domain.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.accountUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// SearchUsers handles GET /search/users?query=
// @Summary Search users
// @Description Case-insensitive substring match across all profile fields
// @Tags users
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {array} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /search/users [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter is required", Code: "VALIDATION_FAILED"})
		return
	}

	users, err := h.accountUseCase.SearchUsers(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// SearchUsersBySkill handles GET /search/users/skill?skill=
// @Summary Search users by skill
// @Tags users
// @Produce json
// @Param skill query string true "Skill text"
// @Success 200 {array} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /search/users/skill [get]
func (h *UserHandler) SearchUsersBySkill(c *gin.Context) {
	skill := c.Query("skill")
	if skill == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "skill parameter is required", Code: "VALIDATION_FAILED"})
		return
	}

	users, err := h.accountUseCase.SearchUsersBySkill(c.Request.Context(), skill)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
