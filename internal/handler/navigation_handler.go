package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fl-jobs/internal/domain"
	"fl-jobs/internal/middleware"
	"fl-jobs/internal/service/listing"
	"fl-jobs/internal/service/navigation"
)

type NavigationHandler struct {
	listingService listing.Service
}

func NewNavigationHandler(listingService listing.Service) *NavigationHandler {
	return &NavigationHandler{listingService: listingService}
}

// State returns the full controller snapshot for rendering.
func (h *NavigationHandler) State(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(middleware.GetController(c).Snapshot())
}

// Navigate performs an explicit screen transition.
func (h *NavigationHandler) Navigate(c *fiber.Ctx) error {
	var input struct {
		Screen string `json:"screen"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	screen, err := domain.ParseScreen(input.Screen)
	if err != nil {
		return middleware.BadRequest("Unknown screen")
	}

	if err := middleware.GetController(c).Navigate(screen); err != nil {
		return mapNavigationError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"screen": screen})
}

// SelectStore opens a listing's detail screen.
func (h *NavigationHandler) SelectStore(c *fiber.Ctx) error {
	store, err := h.listingService.GetStore(c.Params("id"))
	if err != nil {
		if errors.Is(err, listing.ErrListingNotFound) {
			return middleware.NotFound("Listing not found")
		}
		return err
	}

	if err := middleware.GetController(c).SelectStore(*store); err != nil {
		return mapNavigationError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"screen": domain.ScreenStoreDetail,
		"store":  store,
	})
}

// SearchLocation records the destination and opens location results.
func (h *NavigationHandler) SearchLocation(c *fiber.Ctx) error {
	var input struct {
		Location string `json:"location"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Location == "" {
		return middleware.BadRequest("Location is required")
	}

	ctrl := middleware.GetController(c)
	ctrl.SearchLocation(input.Location)

	results := h.listingService.LocationResults(input.Location, ctrl.Filters())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"screen":   domain.ScreenLocationResults,
		"location": input.Location,
		"results":  results,
	})
}

// ApplyFilters replaces the active filter set. Stays on the current
// screen.
func (h *NavigationHandler) ApplyFilters(c *fiber.Ctx) error {
	var input domain.FilterOptions
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.PriceRange[0] > input.PriceRange[1] {
		return middleware.BadRequest("Price range minimum exceeds maximum")
	}

	ctrl := middleware.GetController(c)
	ctrl.ApplyFilters(input)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"filters":      input,
		"active_count": input.ActiveCount(),
		"screen":       ctrl.Screen(),
	})
}

func mapNavigationError(err error) error {
	switch {
	case errors.Is(err, navigation.ErrSessionRequired):
		return middleware.PreconditionFailed("Screen requires a logged-in session")
	case errors.Is(err, navigation.ErrStoreOwnerOnly):
		return middleware.Forbidden("Screen is available to store owners only")
	default:
		return err
	}
}
