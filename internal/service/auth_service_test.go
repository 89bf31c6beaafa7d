package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"handcrafted-haven/internal/events"
	"handcrafted-haven/internal/service"
)

func TestAuthService_Register_StripsAndHashesPassword(t *testing.T) {
	artisanRepo := newFakeArtisanRepo()
	s := service.NewAuthService(artisanRepo, events.NoopPublisher{})

	artisan, err := s.Register(context.Background(), service.RegisterInput{
		Name:     "Sarah Chen",
		Email:    "sarah@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, artisan.ID)
	require.Empty(t, artisan.PasswordHash)

	stored := artisanRepo.artisans[artisan.ID]
	require.NotEqual(t, "password123", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	artisanRepo := newFakeArtisanRepo()
	s := service.NewAuthService(artisanRepo, events.NoopPublisher{})

	input := service.RegisterInput{Name: "Sarah Chen", Email: "sarah@example.com", Password: "password123"}

	_, err := s.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = s.Register(context.Background(), input)
	require.ErrorIs(t, err, service.ErrEmailTaken)

	count := 0
	for _, artisan := range artisanRepo.artisans {
		if artisan.Email == "sarah@example.com" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestAuthService_Login_FailureCausesIndistinguishable(t *testing.T) {
	artisanRepo := newFakeArtisanRepo()
	s := service.NewAuthService(artisanRepo, events.NoopPublisher{})

	_, err := s.Register(context.Background(), service.RegisterInput{
		Name: "Sarah Chen", Email: "sarah@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, wrongPassword := s.Login(context.Background(), "sarah@example.com", "nope")
	_, unknownEmail := s.Login(context.Background(), "nobody@example.com", "password123")

	require.ErrorIs(t, wrongPassword, service.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, service.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Login_Success(t *testing.T) {
	artisanRepo := newFakeArtisanRepo()
	s := service.NewAuthService(artisanRepo, events.NoopPublisher{})

	registered, err := s.Register(context.Background(), service.RegisterInput{
		Name: "Sarah Chen", Email: "sarah@example.com", Password: "password123",
	})
	require.NoError(t, err)

	artisan, err := s.Login(context.Background(), "sarah@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, artisan.ID)
	require.Empty(t, artisan.PasswordHash)
}

func TestAuthService_GetArtisan_NotFoundIsNotAnError(t *testing.T) {
	s := service.NewAuthService(newFakeArtisanRepo(), events.NoopPublisher{})

	artisan, err := s.GetArtisan(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, artisan)
}

func TestAuthService_GetArtisan_StoreFailureSurfaces(t *testing.T) {
	artisanRepo := newFakeArtisanRepo()
	artisanRepo.failWith = errors.New("connection refused")
	s := service.NewAuthService(artisanRepo, events.NoopPublisher{})

	_, err := s.GetArtisan(context.Background(), uuid.New())
	require.Error(t, err)
}
