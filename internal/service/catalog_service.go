package service

import (
	"context"

	"github.com/google/uuid"

	"handcrafted-haven/internal/model"
	"handcrafted-haven/internal/repository"
)

// ArtisanGallery is an artisan's public profile with their listed
// products.
type ArtisanGallery struct {
	Artisan  *model.Artisan         `json:"artisan"`
	Products []model.ProductListing `json:"products"`
}

type CatalogService interface {
	Categories(ctx context.Context) ([]model.Category, error)
	UpcomingEvents(ctx context.Context, limit int) ([]model.Event, error)
	Artisans(ctx context.Context) ([]model.ArtisanSummary, error)
	ArtisanGallery(ctx context.Context, id uuid.UUID) (*ArtisanGallery, error)
}

type catalogService struct {
	artisanRepo  repository.ArtisanRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	eventRepo    repository.EventRepository
}

func NewCatalogService(
	artisanRepo repository.ArtisanRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	eventRepo repository.EventRepository,
) CatalogService {
	return &catalogService{
		artisanRepo:  artisanRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		eventRepo:    eventRepo,
	}
}

func (s *catalogService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *catalogService) UpcomingEvents(ctx context.Context, limit int) ([]model.Event, error) {
	return s.eventRepo.ListUpcoming(ctx, limit)
}

func (s *catalogService) Artisans(ctx context.Context) ([]model.ArtisanSummary, error) {
	return s.artisanRepo.ListWithCounts(ctx)
}

// ArtisanGallery returns (nil, nil) for an unknown artisan.
func (s *catalogService) ArtisanGallery(ctx context.Context, id uuid.UUID) (*ArtisanGallery, error) {
	artisan, err := s.artisanRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if artisan == nil {
		return nil, nil
	}

	artisan.PasswordHash = ""

	products, err := s.productRepo.ListByArtisan(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ArtisanGallery{Artisan: artisan, Products: products}, nil
}
