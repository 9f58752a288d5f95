package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"strings"
)

// --- Error Definitions ---
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("username already exists")
)

// UserService handles user creation and listing.
type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// CreateUser creates a user with the given username. Usernames are unique;
// a collision surfaces as ErrUsernameTaken.
func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user := &domain.User{Username: username}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	user.ID = userID

	return user, nil
}

// ListUsers returns every user in the store.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
