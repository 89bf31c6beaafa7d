package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"handcrafted-haven/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalogService.Categories(c.Context())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to list categories", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not fetch categories"})
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}

func (h *CatalogHandler) Artisans(c *fiber.Ctx) error {
	artisans, err := h.catalogService.Artisans(c.Context())
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to list artisans", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not fetch artisans"})
	}

	return c.Status(fiber.StatusOK).JSON(artisans)
}

func (h *CatalogHandler) ArtisanGallery(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid artisan ID format"})
	}

	gallery, err := h.catalogService.ArtisanGallery(c.Context(), id)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to fetch artisan gallery", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not fetch artisan"})
	}
	if gallery == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Artisan not found"})
	}

	return c.Status(fiber.StatusOK).JSON(gallery)
}

func (h *CatalogHandler) UpcomingEvents(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 2)

	events, err := h.catalogService.UpcomingEvents(c.Context(), limit)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to list events", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not fetch events"})
	}

	return c.Status(fiber.StatusOK).JSON(events)
}
