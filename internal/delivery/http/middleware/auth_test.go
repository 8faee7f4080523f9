package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

type stubVerifier struct {
	userID int
	err    error
}

func (s *stubVerifier) VerifyToken(string) (int, error) {
	return s.userID, s.err
}

func newAuthRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewAuthMiddleware(verifier).RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		verifier       *stubVerifier
		expectedStatus int
	}{
		{
			name:           "missing header",
			header:         "",
			verifier:       &stubVerifier{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			header:         "Basic dXNlcjpwYXNz",
			verifier:       &stubVerifier{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rejected token",
			header:         "Bearer bad-token",
			verifier:       &stubVerifier{err: domain.ErrInvalidToken},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token reaches the handler",
			header:         "Bearer good-token",
			verifier:       &stubVerifier{userID: 7},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(tt.verifier)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"user_id": 7}`, w.Body.String())
			}
		})
	}
}
