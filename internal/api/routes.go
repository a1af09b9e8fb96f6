package api

import (
	"net/http"

	"studentfit/fitness-planner/internal/repository"
	"studentfit/fitness-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface: the persisted-record endpoints
// the SPA talks to directly, plus the session flow.
func SetupRoutes(
	router *gin.Engine,
	allowOrigins []string,
	sessionService service.SessionService,
	records repository.UserRecordRepository,
) {
	router.Use(CORSMiddleware(allowOrigins))

	userHandler := NewUserHandler(records)
	sessionHandler := NewSessionHandler(sessionService)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		apiGroup.GET("/user/:id", userHandler.GetUser)
		apiGroup.POST("/user/:id", userHandler.UpsertUser)

		sessionGroup := apiGroup.Group("/session")
		{
			sessionGroup.POST("", sessionHandler.StartSession)
			sessionGroup.GET("/:id", sessionHandler.GetSession)
			sessionGroup.POST("/:id/onboarding", sessionHandler.CompleteOnboarding)
			sessionGroup.POST("/:id/progress", sessionHandler.LogProgress)
		}
	}
}
