package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/review"
)

type ReviewHandler struct {
	reviewUseCase *review.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *review.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// AddReviewRequest represents the add-review payload
type AddReviewRequest struct {
	RevieweeID int    `json:"reviewee_id" binding:"required"`
	Score      int    `json:"score" binding:"required"`
	Comment    string `json:"comment"`
}

// UpdateReviewRequest carries a partial review update
type UpdateReviewRequest struct {
	Score   *int   `json:"score"`
	Comment string `json:"comment"`
}

// AddReview handles POST /add/review
// @Summary Review another user
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddReviewRequest true "Review data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /add/review [post]
func (h *ReviewHandler) AddReview(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "reviewee ID and score are required", Code: "VALIDATION_FAILED"})
		return
	}

	added, err := h.reviewUseCase.AddReview(c.Request.Context(), reviewerID, req.RevieweeID, req.Score, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":       "Review added successfully",
		"review_id": added.ID,
	})
}

// UpdateReview handles PUT /update/review/:review_id
// @Summary Update my review
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param review_id path int true "Review ID"
// @Param request body UpdateReviewRequest true "Fields to update"
// @Success 200 {object} domain.Review
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /update/review/{review_id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}

	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		respondError(c, domain.ErrReviewNotFound)
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "VALIDATION_FAILED"})
		return
	}

	updated, err := h.reviewUseCase.UpdateReview(c.Request.Context(), reviewID, reviewerID, req.Score, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":       "Review updated successfully",
		"review_id": updated.ID,
		"review":    updated,
	})
}

// DeleteReview handles DELETE /reviews/:review_id
// @Summary Delete my review
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param review_id path int true "Review ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviews/{review_id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}

	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		respondError(c, domain.ErrReviewNotFound)
		return
	}

	if err := h.reviewUseCase.DeleteReview(c.Request.Context(), reviewID, reviewerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":       "Review deleted successfully",
		"review_id": reviewID,
	})
}

// ListUserReviews handles GET /user/:user_id/reviews (public)
// @Summary List reviews a user received
// @Tags reviews
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} domain.Review
// @Failure 404 {object} ErrorResponse
// @Router /user/{user_id}/reviews [get]
func (h *ReviewHandler) ListUserReviews(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		respondError(c, domain.ErrUserNotFound)
		return
	}

	reviews, err := h.reviewUseCase.ListReviewsReceived(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// BestSharers handles GET /bestsharers (public)
// @Summary Top-rated sharers
// @Description Top 6 users by average received review score
// @Tags reviews
// @Produce json
// @Success 200 {array} domain.BestSharer
// @Failure 404 {object} ErrorResponse
// @Router /bestsharers [get]
func (h *ReviewHandler) BestSharers(c *gin.Context) {
	sharers, err := h.reviewUseCase.BestSharers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"best_sharers": sharers})
}
