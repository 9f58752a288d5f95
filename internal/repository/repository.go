package repository

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
// Exercises live inside the user document, so appending one is a user-level
// operation rather than a collection of its own.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	AppendExercise(ctx context.Context, userID primitive.ObjectID, exercise domain.Exercise) error
}
