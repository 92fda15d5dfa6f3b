package service

import (
	"context"
	"errors"

	"github.com/Pasindu599/Fitness-App/internal/domain"
	"github.com/Pasindu599/Fitness-App/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	KeycloakID string
}

// UserService handles registration and profile lookups.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	GetUserProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	ExistsByKeycloakID(ctx context.Context, keycloakID string) (bool, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a user, or returns the already-registered record when the
// email is taken. Registration is idempotent by email only: a second request
// with the same email and different names still returns the stored record
// unchanged.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.userRepo.GetByEmail(ctx, input.Email)
	}

	user := &domain.User{
		Email:      input.Email,
		Password:   input.Password,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		KeycloakID: input.KeycloakID,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// GetUserProfile retrieves a user by id.
func (s *userService) GetUserProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ExistsByKeycloakID reports whether any user carries the given external
// identity-provider reference.
func (s *userService) ExistsByKeycloakID(ctx context.Context, keycloakID string) (bool, error) {
	return s.userRepo.ExistsByKeycloakID(ctx, keycloakID)
}
