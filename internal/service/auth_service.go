package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"handcrafted-haven/internal/events"
	"handcrafted-haven/internal/model"
	"handcrafted-haven/internal/repository"
)

// bcryptCost matches the cost the stored seed hashes were generated with.
const bcryptCost = 12

var (
	ErrEmailTaken         = errors.New("an artisan with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Bio      *string
	Location *string
	Website  *string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.Artisan, error)
	Login(ctx context.Context, email, password string) (*model.Artisan, error)
	GetArtisan(ctx context.Context, id uuid.UUID) (*model.Artisan, error)
}

type authService struct {
	artisanRepo repository.ArtisanRepository
	publisher   events.EventPublisher
}

func NewAuthService(artisanRepo repository.ArtisanRepository, publisher events.EventPublisher) AuthService {
	return &authService{artisanRepo: artisanRepo, publisher: publisher}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.Artisan, error) {
	existing, err := s.artisanRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	artisan := &model.Artisan{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Bio:          input.Bio,
		Location:     input.Location,
		Website:      input.Website,
	}

	newID, err := s.artisanRepo.Create(ctx, artisan)
	if err != nil {
		// The pre-check races with concurrent registrations; the unique
		// constraint is the authority.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	artisan.ID = newID
	artisan.PasswordHash = ""

	go s.publisher.PublishArtisanRegistered(artisan)

	return artisan, nil
}

// Login reports the same error for an unknown email and a wrong
// password so callers cannot probe which emails are registered.
func (s *authService) Login(ctx context.Context, email, password string) (*model.Artisan, error) {
	artisan, err := s.artisanRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up artisan: %w", err)
	}
	if artisan == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(artisan.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	artisan.PasswordHash = ""

	return artisan, nil
}

// GetArtisan returns (nil, nil) when the id matches nobody. Store
// failures come back as errors rather than a null, so callers can tell
// "not authenticated" from "database down".
func (s *authService) GetArtisan(ctx context.Context, id uuid.UUID) (*model.Artisan, error) {
	artisan, err := s.artisanRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching artisan: %w", err)
	}
	if artisan == nil {
		return nil, nil
	}

	artisan.PasswordHash = ""

	return artisan, nil
}
