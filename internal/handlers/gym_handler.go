package handlers

import (
	"log"

	"gymhub/internal/models"
	"gymhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GymHandler handles HTTP requests for gyms.
type GymHandler struct {
	service  *services.GymService
	validate *validator.Validate
}

// NewGymHandler creates a new GymHandler.
func NewGymHandler(service *services.GymService) *GymHandler {
	return &GymHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the gym routes with the Fiber app. The static
// available-spots route is registered before the :id route so Fiber does not
// swallow it as an identifier.
func (h *GymHandler) RegisterRoutes(router fiber.Router) {
	gymRoutes := router.Group("/gyms")
	gymRoutes.Get("/available-spots", h.HandleListAvailableSpots)
	gymRoutes.Get("/", h.HandleGetGyms)
	gymRoutes.Get("/:id", h.HandleGetGymByID)
	gymRoutes.Post("/", h.HandleCreateGym)
	gymRoutes.Put("/:id", h.HandleUpdateGym)
	gymRoutes.Delete("/:id", h.HandleDeleteGym)
}

// HandleGetGyms lists all gyms, or a manager's gyms when the managerId query
// parameter is set.
func (h *GymHandler) HandleGetGyms(c *fiber.Ctx) error {
	if managerID := c.Query("managerId"); managerID != "" {
		gyms, err := h.service.GetGymsByManagerID(managerID)
		if err != nil {
			log.Printf("Error getting gyms for manager %s: %v", managerID, err)
			return respondError(c, err)
		}
		return c.JSON(gyms)
	}

	gyms, err := h.service.GetAllGyms()
	if err != nil {
		log.Printf("Error getting all gyms: %v", err)
		return respondError(c, err)
	}
	return c.JSON(gyms)
}

// HandleGetGymByID retrieves a single gym by its ID.
func (h *GymHandler) HandleGetGymByID(c *fiber.Ctx) error {
	gymID := c.Params("id")
	gym, err := h.service.GetGymByID(gymID)
	if err != nil {
		log.Printf("Error getting gym by ID %s: %v", gymID, err)
		return respondError(c, err)
	}
	return c.JSON(gym)
}

// HandleListAvailableSpots returns gyms with room left, ranked by open
// spots descending with unlimited gyms last.
func (h *GymHandler) HandleListAvailableSpots(c *fiber.Ctx) error {
	availability, err := h.service.ListWithAvailableSpots()
	if err != nil {
		log.Printf("Error listing gym availability: %v", err)
		return respondError(c, err)
	}
	return c.JSON(availability)
}

// HandleCreateGym creates a new gym.
func (h *GymHandler) HandleCreateGym(c *fiber.Ctx) error {
	var gym models.Gym
	if err := c.BodyParser(&gym); err != nil {
		log.Printf("Error parsing gym request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(gym); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.service.CreateGym(&gym); err != nil {
		log.Printf("Error creating gym: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(gym)
}

// HandleUpdateGym applies a partial update to a gym.
func (h *GymHandler) HandleUpdateGym(c *fiber.Ctx) error {
	gymID := c.Params("id")

	var input models.UpdateGymInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing gym update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return respondValidationError(c, err)
	}
	if input.Capacity.Present && input.Capacity.Value != nil && *input.Capacity.Value < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Capacity must be a positive integer",
		})
	}

	gym, err := h.service.UpdateGym(gymID, input)
	if err != nil {
		log.Printf("Error updating gym %s: %v", gymID, err)
		return respondError(c, err)
	}

	return c.JSON(gym)
}

// HandleDeleteGym deletes a gym by its ID.
func (h *GymHandler) HandleDeleteGym(c *fiber.Ctx) error {
	gymID := c.Params("id")

	if err := h.service.DeleteGym(gymID); err != nil {
		log.Printf("Error deleting gym %s: %v", gymID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Gym deleted successfully",
	})
}
