package service_test

import (
	"context"

	"github.com/google/uuid"

	"handcrafted-haven/internal/model"
	"handcrafted-haven/internal/repository"
)

type fakeArtisanRepo struct {
	artisans map[uuid.UUID]*model.Artisan
	failWith error
}

func newFakeArtisanRepo() *fakeArtisanRepo {
	return &fakeArtisanRepo{artisans: map[uuid.UUID]*model.Artisan{}}
}

func (f *fakeArtisanRepo) Create(_ context.Context, artisan *model.Artisan) (uuid.UUID, error) {
	if f.failWith != nil {
		return uuid.Nil, f.failWith
	}

	id := uuid.New()
	stored := *artisan
	stored.ID = id
	f.artisans[id] = &stored
	return id, nil
}

func (f *fakeArtisanRepo) FindByEmail(_ context.Context, email string) (*model.Artisan, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	for _, artisan := range f.artisans {
		if artisan.Email == email {
			found := *artisan
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeArtisanRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Artisan, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	artisan, ok := f.artisans[id]
	if !ok {
		return nil, nil
	}
	found := *artisan
	return &found, nil
}

func (f *fakeArtisanRepo) ListWithCounts(context.Context) ([]model.ArtisanSummary, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return []model.ArtisanSummary{}, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newFakeCategoryRepo(names ...string) *fakeCategoryRepo {
	f := &fakeCategoryRepo{categories: map[uuid.UUID]*model.Category{}}
	for _, name := range names {
		id := uuid.New()
		f.categories[id] = &model.Category{ID: id, Name: name}
	}
	return f
}

func (f *fakeCategoryRepo) idOf(name string) uuid.UUID {
	for id, category := range f.categories {
		if category.Name == name {
			return id
		}
	}
	return uuid.Nil
}

func (f *fakeCategoryRepo) List(context.Context) ([]model.Category, error) {
	out := []model.Category{}
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	found := *category
	return &found, nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, category := range f.categories {
		if category.Name == name {
			found := *category
			return &found, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*model.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, product *model.Product) (*model.Product, error) {
	stored := *product
	stored.ID = uuid.New()
	stored.InStock = true
	f.products[stored.ID] = &stored
	created := stored
	return &created, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ProductListing, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &model.ProductListing{ID: product.ID, Name: product.Name, Price: product.Price}, nil
}

func (f *fakeProductRepo) FindOwned(_ context.Context, id, artisanID uuid.UUID) (*model.Product, error) {
	product, ok := f.products[id]
	if !ok || product.ArtisanID != artisanID {
		return nil, nil
	}
	found := *product
	return &found, nil
}

func (f *fakeProductRepo) List(context.Context, repository.ProductFilters) ([]model.ProductListing, error) {
	return []model.ProductListing{}, nil
}

func (f *fakeProductRepo) ListByArtisan(_ context.Context, artisanID uuid.UUID) ([]model.ProductListing, error) {
	out := []model.ProductListing{}
	for _, product := range f.products {
		if product.ArtisanID == artisanID {
			out = append(out, model.ProductListing{ID: product.ID, Name: product.Name, Price: product.Price})
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListFeatured(context.Context, int) ([]model.ProductListing, error) {
	return []model.ProductListing{}, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id, artisanID uuid.UUID, product *model.Product) (int64, error) {
	existing, ok := f.products[id]
	if !ok || existing.ArtisanID != artisanID {
		return 0, nil
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.ImageURL = product.ImageURL
	existing.Featured = product.Featured
	existing.CategoryID = product.CategoryID
	return 1, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id, artisanID uuid.UUID) (int64, error) {
	existing, ok := f.products[id]
	if !ok || existing.ArtisanID != artisanID {
		return 0, nil
	}

	delete(f.products, id)
	return 1, nil
}
