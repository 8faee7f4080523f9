package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/password"
)

type PasswordHandler struct {
	resetUseCase *password.ResetUseCase
}

func NewPasswordHandler(resetUseCase *password.ResetUseCase) *PasswordHandler {
	return &PasswordHandler{
		resetUseCase: resetUseCase,
	}
}

// ForgotPasswordRequest asks for a reset link
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes a reset token
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPassword handles POST /password/forgot
// @Summary Request a password reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /password/forgot [post]
func (h *PasswordHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "a valid email is required", Code: "VALIDATION_FAILED"})
		return
	}

	if err := h.resetUseCase.RequestReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	// same answer whether or not the account exists
	c.JSON(http.StatusOK, SuccessResponse{Message: "If the account exists, a reset email has been sent"})
}

// ResetPassword handles POST /password/reset
// @Summary Reset password with a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Token and new password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /password/reset [post]
func (h *PasswordHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "token and password are required", Code: "VALIDATION_FAILED"})
		return
	}

	if err := h.resetUseCase.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Password updated successfully"})
}
