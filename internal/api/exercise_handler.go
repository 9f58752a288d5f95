package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// AddExerciseRequest accepts either a urlencoded form or a JSON body.
// Duration and Date stay strings here; coercion is the service's job.
type AddExerciseRequest struct {
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
	Date        string `form:"date" json:"date"`
}

// AddExerciseResponse echoes the stored exercise together with its owner.
type AddExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"` // Day-string, e.g. "Tue Jan 02 2024"
	ID          string `json:"_id"`
}

// LogEntry is one shaped exercise in a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the full log payload for one user.
type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}

// MapExercisesToLog converts filtered exercises to shaped log entries.
func MapExercisesToLog(exercises []domain.Exercise) []LogEntry {
	entries := make([]LogEntry, len(exercises))
	for i, e := range exercises {
		entries[i] = LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.DateString(),
		}
	}
	return entries
}

// --- Handler Methods ---

// AddExercise handles POST /api/users/:_id/exercises.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("_id"))
	if err != nil {
		// An id that cannot resolve to a user is a 404, not a server error.
		abortWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Description and duration are required")
		return
	}

	user, exercise, err := h.exerciseService.AddExercise(c.Request.Context(), userID, service.ExerciseInput{
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseInvalid):
			abortWithError(c, http.StatusBadRequest, "Description and duration are required")
		case errors.Is(err, service.ErrInvalidDate):
			abortWithError(c, http.StatusBadRequest, "Invalid date format")
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "User not found")
		default:
			log.Printf("ERROR: [%s] adding exercise: %v", requestID(c), err)
			abortWithDetails(c, http.StatusInternalServerError, "Failed to add exercise", err)
		}
		return
	}

	c.JSON(http.StatusOK, AddExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DateString(),
		ID:          user.ID.Hex(),
	})
}

// GetLogs handles GET /api/users/:_id/logs.
func (h *ExerciseHandler) GetLogs(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("_id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "User not found")
		return
	}

	user, exercises, err := h.exerciseService.GetUserLog(
		c.Request.Context(),
		userID,
		c.Query("from"),
		c.Query("to"),
		c.Query("limit"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			abortWithError(c, http.StatusBadRequest, "Invalid date format")
		case errors.Is(err, service.ErrInvalidLimit):
			abortWithError(c, http.StatusBadRequest, "Invalid limit")
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "User not found")
		default:
			log.Printf("ERROR: [%s] fetching logs: %v", requestID(c), err)
			abortWithDetails(c, http.StatusInternalServerError, "Failed to fetch logs", err)
		}
		return
	}

	c.JSON(http.StatusOK, LogResponse{
		Username: user.Username,
		Count:    len(exercises),
		ID:       user.ID.Hex(),
		Log:      MapExercisesToLog(exercises),
	})
}
