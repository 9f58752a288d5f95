package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs ---

// CreateUserRequest accepts either a urlencoded form or a JSON body.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}

// UserResponse is the DTO for returning a user: just the username and id,
// never the embedded exercise array.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// MapUserToResponse converts a domain.User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	}
}

// MapUsersToResponse converts a slice of domain.User to UserResponse DTOs.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Username is required")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			abortWithError(c, http.StatusBadRequest, "Username is required")
		case errors.Is(err, service.ErrUsernameTaken):
			abortWithError(c, http.StatusBadRequest, "Username already exists")
		default:
			log.Printf("ERROR: [%s] saving user: %v", requestID(c), err)
			abortWithError(c, http.StatusInternalServerError, "Failed to save user")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: [%s] fetching users: %v", requestID(c), err)
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(users))
}
