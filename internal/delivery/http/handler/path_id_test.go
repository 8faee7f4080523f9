package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Non-numeric path ids can never name a resource, so they answer 404 like an
// unknown id, before any use case runs.
func TestNonNumericPathIDsReturnNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	asUser := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", 1)
			h(c)
		}
	}

	r := gin.New()
	r.GET("/profile/:user_id", NewUserHandler(nil).GetProfileByID)
	r.GET("/user/:user_id/reviews", NewReviewHandler(nil).ListUserReviews)
	r.PUT("/update/review/:review_id", asUser(NewReviewHandler(nil).UpdateReview))
	r.DELETE("/reviews/:review_id", asUser(NewReviewHandler(nil).DeleteReview))
	r.GET("/match/:match_id", asUser(NewMatchHandler(nil).GetMatch))
	r.PUT("/match/:match_id", asUser(NewMatchHandler(nil).UpdateMatch))
	r.DELETE("/match/:match_id", asUser(NewMatchHandler(nil).DeleteMatch))

	tests := []struct {
		method string
		path   string
		code   string
	}{
		{http.MethodGet, "/profile/abc", "USER_NOT_FOUND"},
		{http.MethodGet, "/user/abc/reviews", "USER_NOT_FOUND"},
		{http.MethodPut, "/update/review/abc", "REVIEW_NOT_FOUND"},
		{http.MethodDelete, "/reviews/abc", "REVIEW_NOT_FOUND"},
		{http.MethodGet, "/match/abc", "MATCH_NOT_FOUND"},
		{http.MethodPut, "/match/abc", "MATCH_NOT_FOUND"},
		{http.MethodDelete, "/match/abc", "MATCH_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}
