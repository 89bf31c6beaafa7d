package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"handcrafted-haven/internal/repository"
	"handcrafted-haven/internal/service"
	"handcrafted-haven/internal/session"
)

type ProductHandler struct {
	productService service.ProductService
	sessions       *session.Manager
	validate       *validator.Validate
}

func NewProductHandler(productService service.ProductService, sessions *session.Manager) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		sessions:       sessions,
		validate:       validator.New(),
	}
}

// ProductRequest is the create/update form. Price arrives as a numeric
// string and featured as an "on" checkbox value; both are normalized
// here. Category is addressed by id, with the name kept as a fallback
// for older forms.
type ProductRequest struct {
	Name         string `json:"name" form:"name" validate:"required"`
	Description  string `json:"description" form:"description" validate:"required"`
	Price        string `json:"price" form:"price" validate:"required"`
	Image        string `json:"image" form:"image" validate:"required"`
	CategoryID   string `json:"categoryId" form:"categoryId"`
	CategoryName string `json:"categoryName" form:"categoryName"`
	Featured     string `json:"featured" form:"featured"`
}

func parsePriceBound(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	filters := repository.ProductFilters{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		MinPrice:  parsePriceBound(c.Query("minPrice")),
		MaxPrice:  parsePriceBound(c.Query("maxPrice")),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	products, err := h.productService.List(c.Context(), filters)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to list products", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not fetch products"})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 3)

	products, err := h.productService.Featured(c.Context(), limit)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to list featured products", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not fetch products"})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid product ID format"})
	}

	product, err := h.productService.Get(c.Context(), id)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to fetch product", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not fetch product"})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Product not found"})
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) requireSession(c *fiber.Ctx) (uuid.UUID, error) {
	artisanID, ok := h.sessions.ArtisanID(c)
	if !ok {
		return uuid.Nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "You must be logged in to manage products"})
	}
	return artisanID, nil
}

func (h *ProductHandler) MyProducts(c *fiber.Ctx) error {
	artisanID, err := h.requireSession(c)
	if err != nil || artisanID == uuid.Nil {
		return err
	}

	products, err := h.productService.ListByArtisan(c.Context(), artisanID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to list artisan products", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not fetch products"})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *ProductHandler) GetOwned(c *fiber.Ctx) error {
	artisanID, err := h.requireSession(c)
	if err != nil || artisanID == uuid.Nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid product ID format"})
	}

	product, err := h.productService.GetOwned(c.Context(), id, artisanID)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to fetch product", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Could not fetch product"})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Product not found"})
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) parseInput(c *fiber.Ctx, request *ProductRequest) (service.ProductInput, error) {
	price, err := strconv.ParseFloat(request.Price, 64)
	if err != nil {
		return service.ProductInput{}, service.ErrInvalidPrice
	}

	categoryID, err := h.resolveCategory(c, request)
	if err != nil {
		return service.ProductInput{}, err
	}

	return service.ProductInput{
		Name:        request.Name,
		Description: request.Description,
		Price:       price,
		ImageURL:    request.Image,
		CategoryID:  categoryID,
		Featured:    request.Featured == "on" || request.Featured == "true",
	}, nil
}

func (h *ProductHandler) resolveCategory(c *fiber.Ctx, request *ProductRequest) (uuid.UUID, error) {
	if request.CategoryID != "" {
		categoryID, err := uuid.Parse(request.CategoryID)
		if err != nil {
			return uuid.Nil, service.ErrInvalidCategory
		}
		return categoryID, nil
	}

	if request.CategoryName != "" {
		return h.productService.CategoryIDByName(c.Context(), request.CategoryName)
	}

	return uuid.Nil, service.ErrInvalidCategory
}

func (h *ProductHandler) writeProductError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrInvalidPrice):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrInvalidCategory):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": err.Error()})
	default:
		slog.ErrorContext(c.UserContext(), "Product operation failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Operation failed. Please try again."})
	}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	artisanID, err := h.requireSession(c)
	if err != nil || artisanID == uuid.Nil {
		return err
	}

	var request ProductRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse request body"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "All fields are required", "details": err.Error()})
	}

	input, err := h.parseInput(c, &request)
	if err != nil {
		return h.writeProductError(c, err)
	}

	product, err := h.productService.Create(c.Context(), artisanID, input)
	if err != nil {
		return h.writeProductError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "product": product})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	artisanID, err := h.requireSession(c)
	if err != nil || artisanID == uuid.Nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid product ID format"})
	}

	var request ProductRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse request body"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "All fields are required", "details": err.Error()})
	}

	input, err := h.parseInput(c, &request)
	if err != nil {
		return h.writeProductError(c, err)
	}

	if err := h.productService.Update(c.Context(), id, artisanID, input); err != nil {
		return h.writeProductError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	artisanID, err := h.requireSession(c)
	if err != nil || artisanID == uuid.Nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid product ID format"})
	}

	if err := h.productService.Delete(c.Context(), id, artisanID); err != nil {
		return h.writeProductError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
