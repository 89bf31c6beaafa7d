package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"

	"handcrafted-haven/internal/events"
	"handcrafted-haven/internal/model"
	"handcrafted-haven/internal/repository"
)

var (
	ErrMissingFields   = errors.New("all product fields are required")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrInvalidCategory = errors.New("invalid category selected")
	// ErrProductNotFound also covers products owned by somebody else;
	// the two cases are deliberately indistinguishable.
	ErrProductNotFound = errors.New("product not found or you don't have permission to modify it")
)

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	CategoryID  uuid.UUID
	Featured    bool
}

type ProductService interface {
	List(ctx context.Context, filters repository.ProductFilters) ([]model.ProductListing, error)
	Featured(ctx context.Context, limit int) ([]model.ProductListing, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ProductListing, error)
	GetOwned(ctx context.Context, id, artisanID uuid.UUID) (*model.Product, error)
	ListByArtisan(ctx context.Context, artisanID uuid.UUID) ([]model.ProductListing, error)
	CategoryIDByName(ctx context.Context, name string) (uuid.UUID, error)
	Create(ctx context.Context, artisanID uuid.UUID, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, id, artisanID uuid.UUID, input ProductInput) error
	Delete(ctx context.Context, id, artisanID uuid.UUID) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	publisher    events.EventPublisher
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, publisher events.EventPublisher) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

func (s *productService) List(ctx context.Context, filters repository.ProductFilters) ([]model.ProductListing, error) {
	return s.productRepo.List(ctx, filters)
}

func (s *productService) Featured(ctx context.Context, limit int) ([]model.ProductListing, error) {
	return s.productRepo.ListFeatured(ctx, limit)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.ProductListing, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) GetOwned(ctx context.Context, id, artisanID uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindOwned(ctx, id, artisanID)
}

func (s *productService) ListByArtisan(ctx context.Context, artisanID uuid.UUID) ([]model.ProductListing, error) {
	return s.productRepo.ListByArtisan(ctx, artisanID)
}

// CategoryIDByName resolves a category's display name to its stable id
// for forms that still submit the name.
func (s *productService) CategoryIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}
	if category == nil {
		return uuid.Nil, ErrInvalidCategory
	}

	return category.ID, nil
}

func (s *productService) validate(ctx context.Context, input ProductInput) error {
	if input.Name == "" || input.Description == "" || input.ImageURL == "" || input.CategoryID == uuid.Nil {
		return ErrMissingFields
	}
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) || input.Price < 0 {
		return ErrInvalidPrice
	}

	category, err := s.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrInvalidCategory
	}

	return nil
}

func (s *productService) Create(ctx context.Context, artisanID uuid.UUID, input ProductInput) (*model.Product, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Featured:    input.Featured,
		ArtisanID:   artisanID,
		CategoryID:  input.CategoryID,
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishProductCreated(created.ID, artisanID)

	return created, nil
}

func (s *productService) Update(ctx context.Context, id, artisanID uuid.UUID, input ProductInput) error {
	if err := s.validate(ctx, input); err != nil {
		return err
	}

	product := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Featured:    input.Featured,
		CategoryID:  input.CategoryID,
	}

	affected, err := s.productRepo.Update(ctx, id, artisanID, product)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	go s.publisher.PublishProductUpdated(id, artisanID)

	return nil
}

func (s *productService) Delete(ctx context.Context, id, artisanID uuid.UUID) error {
	affected, err := s.productRepo.Delete(ctx, id, artisanID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	go s.publisher.PublishProductDeleted(id, artisanID)

	return nil
}
