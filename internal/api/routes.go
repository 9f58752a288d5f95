package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint onto the router. staticDir holds the
// landing page; pass "" to skip serving it (tests do).
func SetupRoutes(
	router *gin.Engine,
	staticDir string,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if staticDir != "" {
		router.StaticFile("/", staticDir+"/index.html")
		router.Static("/public", staticDir)
	}

	apiGroup := router.Group("/api")
	{
		usersGroup := apiGroup.Group("/users")
		{
			usersGroup.POST("", userHandler.CreateUser)
			usersGroup.GET("", userHandler.ListUsers)

			usersGroup.POST("/:_id/exercises", exerciseHandler.AddExercise)
			usersGroup.GET("/:_id/logs", exerciseHandler.GetLogs)
		}
	}
}
