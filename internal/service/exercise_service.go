package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrExerciseInvalid = errors.New("description and duration are required")
	ErrInvalidDate     = errors.New("invalid date format")
	ErrInvalidLimit    = errors.New("invalid limit")
)

// ExerciseInput is the raw, untyped material of an exercise submission.
// Duration and Date arrive as strings from form or JSON bodies and are
// validated and coerced here rather than at the transport layer.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

// ExerciseService handles appending exercises to a user and computing the
// filtered exercise log.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID primitive.ObjectID, input ExerciseInput) (*domain.User, *domain.Exercise, error)
	GetUserLog(ctx context.Context, userID primitive.ObjectID, from, to, limit string) (*domain.User, []domain.Exercise, error)
}

type exerciseService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository) ExerciseService {
	return &exerciseService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// normalizeExercise validates a candidate exercise and coerces its fields
// into a storable record. Pure; persistence is the caller's problem.
func normalizeExercise(input ExerciseInput, now time.Time) (domain.Exercise, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" || strings.TrimSpace(input.Duration) == "" {
		return domain.Exercise{}, ErrExerciseInvalid
	}

	duration, err := parseDuration(input.Duration)
	if err != nil || duration < 1 {
		return domain.Exercise{}, ErrExerciseInvalid
	}

	date := now.UTC()
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			return domain.Exercise{}, ErrInvalidDate
		}
		date = parsed
	}

	return domain.Exercise{
		Description: description,
		Duration:    duration,
		Date:        date,
	}, nil
}

// parseDuration coerces a duration string to whole minutes. Fractional
// values are truncated, never rounded ("30.9" -> 30). Only plain decimal
// forms are accepted; exponent notation is rejected.
func parseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if strings.ContainsAny(s, "eE") {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// AddExercise validates and normalizes the submission, appends it to the
// user's log, and returns the owning user along with the stored exercise.
func (s *exerciseService) AddExercise(ctx context.Context, userID primitive.ObjectID, input ExerciseInput) (*domain.User, *domain.Exercise, error) {
	exercise, err := normalizeExercise(input, s.now())
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	if err := s.userRepo.AppendExercise(ctx, userID, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	return user, &exercise, nil
}

// GetUserLog resolves the user, parses the raw query parameters, and runs
// the log filter over the user's exercise sequence. The from/to/limit
// arguments are the raw query strings; empty means absent.
func (s *exerciseService) GetUserLog(ctx context.Context, userID primitive.ObjectID, from, to, limit string) (*domain.User, []domain.Exercise, error) {
	query, err := buildLogQuery(from, to, limit)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	return user, FilterExercises(user.Exercises, query), nil
}

// buildLogQuery turns raw query strings into a typed LogQuery. Malformed
// dates and negative or non-integer limits are rejected outright instead of
// silently matching nothing.
func buildLogQuery(from, to, limit string) (LogQuery, error) {
	var query LogQuery

	if from != "" {
		t, err := parseDate(from)
		if err != nil {
			return LogQuery{}, ErrInvalidDate
		}
		query.From = &t
	}
	if to != "" {
		t, err := parseDate(to)
		if err != nil {
			return LogQuery{}, ErrInvalidDate
		}
		query.To = &t
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return LogQuery{}, ErrInvalidLimit
		}
		query.Limit = &n
	}

	return query, nil
}
