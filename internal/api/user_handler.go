package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/domain"
	"github.com/Pasindu599/Fitness-App/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	KeycloakID string `json:"keycloakId"`
}

// UserResponse excludes the stored password.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	KeycloakID string    `json:"keycloakId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:         user.ID.Hex(),
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		KeycloakID: user.KeycloakID,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a user
// @Description Creates a user account. Registration is idempotent by email: a repeated email returns the already-stored record unchanged.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 200 {object} UserResponse "Existing or newly created user"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), service.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		KeycloakID: req.KeycloakID,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// GetUserProfile godoc
// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid ID format"
// @Failure 404 {object} gin.H "User not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/{userId} [get]
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	user, err := h.userService.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve user.")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ValidateUser godoc
// @Summary Check whether a user exists
// @Description Returns true when a registered user carries the given identity-provider reference.
// @Tags Users
// @Produce json
// @Param userId path string true "Identity-provider user reference"
// @Success 200 {boolean} bool
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/{userId}/validate [get]
func (h *UserHandler) ValidateUser(c *gin.Context) {
	exists, err := h.userService.ExistsByKeycloakID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to validate user.")
		return
	}

	c.JSON(http.StatusOK, exists)
}
