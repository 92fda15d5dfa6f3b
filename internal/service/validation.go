package service

import (
	"context"

	"github.com/Pasindu599/Fitness-App/internal/repository"
)

// UserValidator decides whether a caller identity may track activities.
type UserValidator interface {
	ValidateUser(ctx context.Context, userID string) (bool, error)
}

// alwaysValidValidator accepts every caller. This is the default wiring; the
// identity-provider check below exists but ships disabled.
type alwaysValidValidator struct{}

// NewAlwaysValidValidator returns a validator that accepts every user.
func NewAlwaysValidValidator() UserValidator {
	return alwaysValidValidator{}
}

func (alwaysValidValidator) ValidateUser(ctx context.Context, userID string) (bool, error) {
	return true, nil
}

// keycloakValidator checks the caller against the external identity-provider
// reference stored on user records.
type keycloakValidator struct {
	userRepo repository.UserRepository
}

// NewKeycloakValidator returns a validator backed by the user store.
func NewKeycloakValidator(userRepo repository.UserRepository) UserValidator {
	return &keycloakValidator{userRepo: userRepo}
}

func (v *keycloakValidator) ValidateUser(ctx context.Context, userID string) (bool, error) {
	return v.userRepo.ExistsByKeycloakID(ctx, userID)
}
