package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"handcrafted-haven/internal/session"
	"handcrafted-haven/internal/storage"
)

type UploadHandler struct {
	presigner *storage.ImagePresigner
	sessions  *session.Manager
}

func NewUploadHandler(presigner *storage.ImagePresigner, sessions *session.Manager) *UploadHandler {
	return &UploadHandler{presigner: presigner, sessions: sessions}
}

type PresignRequest struct {
	Ext string `json:"ext" form:"ext"`
}

// Presign hands the dashboard a short-lived PUT URL for a product
// image, plus the public URL to submit with the product form.
func (h *UploadHandler) Presign(c *fiber.Ctx) error {
	artisanID, ok := h.sessions.ArtisanID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "You must be logged in to upload images"})
	}

	var request PresignRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse request body"})
	}

	ext := request.Ext
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		ext = ".jpg"
	}

	uploadURL, publicURL, err := h.presigner.PresignProductImage(c.Context(), artisanID, ext)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to presign upload", slog.String("error", err.Error()), slog.String("artisan_id", artisanID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not create upload URL"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"upload_url": uploadURL,
		"public_url": publicURL,
	})
}
