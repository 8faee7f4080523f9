package http

import (
	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http/handler"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	skillHandler    *handler.SkillHandler
	matchHandler    *handler.MatchHandler
	reviewHandler   *handler.ReviewHandler
	passwordHandler *handler.PasswordHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	skillHandler *handler.SkillHandler,
	matchHandler *handler.MatchHandler,
	reviewHandler *handler.ReviewHandler,
	passwordHandler *handler.PasswordHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		userHandler:     userHandler,
		skillHandler:    skillHandler,
		matchHandler:    matchHandler,
		reviewHandler:   reviewHandler,
		passwordHandler: passwordHandler,
		authMiddleware:  authMiddleware,
	}
}

// Setup wires the route table. Paths match the original public API.
func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Public routes
	router.POST("/signup", r.authHandler.Signup)
	router.POST("/login", r.authHandler.Login)
	router.POST("/password/forgot", r.passwordHandler.ForgotPassword)
	router.POST("/password/reset", r.passwordHandler.ResetPassword)

	router.GET("/users", r.userHandler.ListUsers)
	router.GET("/search/users", r.userHandler.SearchUsers)
	router.GET("/search/users/skill", r.userHandler.SearchUsersBySkill)
	router.GET("/profile/:user_id", r.userHandler.GetProfileByID)
	router.GET("/bestsharers", r.reviewHandler.BestSharers)
	router.GET("/user/:user_id/reviews", r.reviewHandler.ListUserReviews)

	// Protected routes
	protected := router.Group("")
	protected.Use(r.authMiddleware.RequireAuth())
	{
		protected.GET("/profile", r.userHandler.GetProfile)
		protected.PUT("/update_user", r.userHandler.UpdateUser)

		protected.POST("/add/skill", r.skillHandler.AddSkill)
		protected.PUT("/update/skill/:skill_name", r.skillHandler.UpdateSkill)
		protected.DELETE("/delete/skill/:skill_name", r.skillHandler.DeleteSkill)

		protected.POST("/add/review", r.reviewHandler.AddReview)
		protected.PUT("/update/review/:review_id", r.reviewHandler.UpdateReview)
		protected.DELETE("/reviews/:review_id", r.reviewHandler.DeleteReview)

		protected.POST("/match", r.matchHandler.CreateMatch)
		protected.GET("/match/:match_id", r.matchHandler.GetMatch)
		protected.PUT("/match/:match_id", r.matchHandler.UpdateMatch)
		protected.DELETE("/match/:match_id", r.matchHandler.DeleteMatch)
	}

	return router
}
