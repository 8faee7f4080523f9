package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/account"
)

type AuthHandler struct {
	accountUseCase *account.AccountUseCase
}

func NewAuthHandler(accountUseCase *account.AccountUseCase) *AuthHandler {
	return &AuthHandler{
		accountUseCase: accountUseCase,
	}
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse is returned on successful registration
type SignupResponse struct {
	Message string `json:"msg"`
	UserID  int    `json:"user_id"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Signup handles POST /signup
// @Summary Register
// @Description Register a new user with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body account.RegisterRequest true "Signup data"
// @Success 201 {object} SignupResponse
// @Failure 400 {object} ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required", Code: "VALIDATION_FAILED"})
		return
	}

	user, err := h.accountUseCase.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{
		Message: "New User Created",
		UserID:  user.ID,
	})
}

// Login handles POST /login
// @Summary Login
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required", Code: "VALIDATION_FAILED"})
		return
	}

	result, err := h.accountUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: result.Token,
		ExpiresAt:   result.ExpiresAt.Unix(),
	})
}
