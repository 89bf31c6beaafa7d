package api

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"handcrafted-haven/internal/service"
	"handcrafted-haven/internal/session"
)

type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
	validate    *validator.Validate
}

func NewAuthHandler(authService service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		validate:    validator.New(),
	}
}

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=2"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Bio      string `json:"bio" form:"bio"`
	Location string `json:"location" form:"location"`
	Website  string `json:"website" form:"website" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// isFormPost tells whether the client came from an HTML form, in which
// case success is answered with a redirect instead of a JSON body.
func isFormPost(c *fiber.Ctx) bool {
	contentType := string(c.Request().Header.ContentType())
	return strings.HasPrefix(contentType, fiber.MIMEApplicationForm) ||
		strings.HasPrefix(contentType, fiber.MIMEMultipartForm)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var request RegisterRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse request body"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid input", "details": err.Error()})
	}

	artisan, err := h.authService.Register(c.Context(), service.RegisterInput{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Bio:      optional(request.Bio),
		Location: optional(request.Location),
		Website:  optional(request.Website),
	})

	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": err.Error()})
		}

		slog.ErrorContext(c.UserContext(), "Registration failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Registration failed. Please try again."})
	}

	if err := h.sessions.Issue(c, artisan.ID); err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to issue session", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Registration failed. Please try again."})
	}

	if isFormPost(c) {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "artisan": artisan})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var request LoginRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse request body"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid input", "details": err.Error()})
	}

	artisan, err := h.authService.Login(c.Context(), request.Email, request.Password)

	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": err.Error()})
		}

		slog.ErrorContext(c.UserContext(), "Login failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Login failed. Please try again."})
	}

	if err := h.sessions.Issue(c, artisan.ID); err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to issue session", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Login failed. Please try again."})
	}

	if isFormPost(c) {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "artisan": artisan})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Clear(c)

	if isFormPost(c) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

// Me resolves the session cookie to a full artisan record. A valid
// cookie whose artisan no longer exists counts as unauthenticated.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	artisanID, ok := h.sessions.ArtisanID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	artisan, err := h.authService.GetArtisan(c.Context(), artisanID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to load current artisan", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load profile. Please try again."})
	}
	if artisan == nil {
		h.sessions.Clear(c)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	return c.Status(fiber.StatusOK).JSON(artisan)
}
