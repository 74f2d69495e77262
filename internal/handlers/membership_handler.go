package handlers

import (
	"log"

	"gymhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MembershipHandler handles HTTP requests for memberships.
type MembershipHandler struct {
	service  *services.MembershipService
	validate *validator.Validate
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(service *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the membership routes with the Fiber app.
func (h *MembershipHandler) RegisterRoutes(router fiber.Router) {
	membershipRoutes := router.Group("/memberships")
	membershipRoutes.Post("/", h.HandleAdmitUser)
	membershipRoutes.Delete("/users/:userId/gyms/:gymId", h.HandleRemoveUser)
	membershipRoutes.Get("/gyms/:gymId/users", h.HandleListGymUsers)
	membershipRoutes.Get("/users/:userId/gyms", h.HandleListUserGyms)
}

// CreateMembershipRequest is the request body for admitting a user to a gym.
type CreateMembershipRequest struct {
	UserID string `json:"user_id" validate:"required"`
	GymID  string `json:"gym_id" validate:"required"`
}

// HandleAdmitUser admits a user to a gym.
func (h *MembershipHandler) HandleAdmitUser(c *fiber.Ctx) error {
	var req CreateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing membership request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	membership, err := h.service.AdmitUserToGym(req.UserID, req.GymID)
	if err != nil {
		log.Printf("Error admitting user %s to gym %s: %v", req.UserID, req.GymID, err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(membership)
}

// HandleRemoveUser removes a user from a gym.
func (h *MembershipHandler) HandleRemoveUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	gymID := c.Params("gymId")

	if err := h.service.RemoveUserFromGym(userID, gymID); err != nil {
		log.Printf("Error removing user %s from gym %s: %v", userID, gymID, err)
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListGymUsers lists the members of a gym, most recent join first.
func (h *MembershipHandler) HandleListGymUsers(c *fiber.Ctx) error {
	gymID := c.Params("gymId")

	users, err := h.service.ListGymUsers(gymID)
	if err != nil {
		log.Printf("Error listing users for gym %s: %v", gymID, err)
		return respondError(c, err)
	}

	return c.JSON(users)
}

// HandleListUserGyms lists the gyms a user belongs to.
func (h *MembershipHandler) HandleListUserGyms(c *fiber.Ctx) error {
	userID := c.Params("userId")

	gyms, err := h.service.ListUserGyms(userID)
	if err != nil {
		log.Printf("Error listing gyms for user %s: %v", userID, err)
		return respondError(c, err)
	}

	return c.JSON(gyms)
}
