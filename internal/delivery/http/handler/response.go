package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"msg"`
}

type httpError struct {
	status int
	code   string
}

// errorTable maps domain sentinels to stable status codes. Anything not
// listed is an internal failure: logged server-side, generic to the client.
var errorTable = map[error]httpError{
	domain.ErrUserNotFound:       {http.StatusNotFound, "USER_NOT_FOUND"},
	domain.ErrEmailTaken:         {http.StatusBadRequest, "EMAIL_TAKEN"},
	domain.ErrUserInactive:       {http.StatusForbidden, "USER_INACTIVE"},
	domain.ErrInvalidCredentials: {http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	domain.ErrNoUsersFound:       {http.StatusNotFound, "NO_USERS_FOUND"},
	domain.ErrNothingToUpdate:    {http.StatusBadRequest, "NOTHING_TO_UPDATE"},

	domain.ErrSkillNotFound:     {http.StatusNotFound, "SKILL_NOT_FOUND"},
	domain.ErrSkillExists:       {http.StatusBadRequest, "SKILL_EXISTS"},
	domain.ErrSkillLimitReached: {http.StatusBadRequest, "SKILL_LIMIT_REACHED"},
	domain.ErrInvalidSkill:      {http.StatusBadRequest, "INVALID_SKILL"},

	domain.ErrMatchNotFound:      {http.StatusNotFound, "MATCH_NOT_FOUND"},
	domain.ErrMatchExists:        {http.StatusBadRequest, "MATCH_EXISTS"},
	domain.ErrMatchForbidden:     {http.StatusForbidden, "MATCH_FORBIDDEN"},
	domain.ErrMatchFinalized:     {http.StatusBadRequest, "MATCH_FINALIZED"},
	domain.ErrInvalidMatchStatus: {http.StatusBadRequest, "INVALID_MATCH_STATUS"},
	domain.ErrSelfMatch:          {http.StatusBadRequest, "SELF_MATCH"},

	domain.ErrReviewNotFound:  {http.StatusNotFound, "REVIEW_NOT_FOUND"},
	domain.ErrReviewExists:    {http.StatusBadRequest, "REVIEW_EXISTS"},
	domain.ErrReviewForbidden: {http.StatusForbidden, "REVIEW_FORBIDDEN"},
	domain.ErrSelfReview:      {http.StatusBadRequest, "SELF_REVIEW"},
	domain.ErrNoReviewsFound:  {http.StatusNotFound, "NO_REVIEWS_FOUND"},

	domain.ErrInvalidToken:      {http.StatusUnauthorized, "INVALID_TOKEN"},
	domain.ErrResetTokenInvalid: {http.StatusBadRequest, "INVALID_RESET_TOKEN"},
}

// respondError translates a use-case error once, at the boundary.
func respondError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Code: "VALIDATION_FAILED"})
		return
	}

	for sentinel, he := range errorTable {
		if errors.Is(err, sentinel) {
			c.JSON(he.status, ErrorResponse{Error: sentinel.Error(), Code: he.code})
			return
		}
	}

	slog.Error("unexpected error", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"})
}

// currentUserID reads the identity the auth middleware stored.
func currentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Code: "UNAUTHORIZED"})
		return 0, false
	}
	id, ok := v.(int)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Code: "UNAUTHORIZED"})
		return 0, false
	}
	return id, true
}
