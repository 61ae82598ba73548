package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/boostly-app/boostly/internal/domain/port/core"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/api/handler"
	"github.com/boostly-app/boostly/internal/infrastructure/adapter/api/middleware"
)

// Handlers bundles the HTTP handlers the router wires up
type Handlers struct {
	Auth        *handler.AuthHandler
	Account     *handler.AccountHandler
	User        *handler.UserHandler
	Recognition *handler.RecognitionHandler
	Endorsement *handler.EndorsementHandler
	Leaderboard *handler.LeaderboardHandler
	Health      *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, tokens coreport.TokenService, logger coreport.Logger) {
	api := router.Group("/api")
	{
		// Open endpoints
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.GET("/health", h.Health.Check)

		// Everything else requires a bearer token
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(tokens, logger))
		{
			authed.GET("/account/me", h.Account.GetMe)
			authed.POST("/account/redeem", h.Account.Redeem)

			authed.GET("/users", h.User.ListUsers)

			authed.POST("/recognitions", h.Recognition.Send)
			authed.GET("/recognitions", h.Recognition.ListRecent)
			authed.GET("/recognitions/receiver/:userId", h.Recognition.ListForReceiver)

			authed.POST("/endorsements", h.Endorsement.Endorse)

			authed.GET("/leaderboard", h.Leaderboard.GetLeaderboard)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigin string) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigin))
}
