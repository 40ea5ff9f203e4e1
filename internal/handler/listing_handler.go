package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fl-jobs/internal/middleware"
	"fl-jobs/internal/service/listing"
)

type ListingHandler struct {
	listingService listing.Service
}

func NewListingHandler(listingService listing.Service) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// List returns the home-screen listing for the caller's role with
// their active filters applied.
func (h *ListingHandler) List(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	filters := middleware.GetController(c).Filters()

	items := h.listingService.Visible(user.Role, filters)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"listings":       items,
		"total":          len(items),
		"active_filters": filters.ActiveCount(),
	})
}

// Locations serves the destination directory, optionally narrowed by
// the q query parameter.
func (h *ListingHandler) Locations(c *fiber.Ctx) error {
	locations := h.listingService.SearchLocations(c.Query("q"))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"locations": locations,
	})
}

func (h *ListingHandler) Get(c *fiber.Ctx) error {
	store, err := h.listingService.GetStore(c.Params("id"))
	if err != nil {
		if errors.Is(err, listing.ErrListingNotFound) {
			return middleware.NotFound("Listing not found")
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(store)
}
