package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"handcrafted-haven/internal/api"
	"handcrafted-haven/internal/model"
	"handcrafted-haven/internal/service"
	"handcrafted-haven/internal/session"
)

type stubAuthService struct {
	registered *model.Artisan
	loginErr   error
	artisan    *model.Artisan
}

func (s *stubAuthService) Register(_ context.Context, input service.RegisterInput) (*model.Artisan, error) {
	if s.registered != nil {
		return nil, service.ErrEmailTaken
	}

	s.registered = &model.Artisan{ID: uuid.New(), Name: input.Name, Email: input.Email}
	return s.registered, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (*model.Artisan, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.artisan, nil
}

func (s *stubAuthService) GetArtisan(context.Context, uuid.UUID) (*model.Artisan, error) {
	return s.artisan, nil
}

func newAuthApp(stub *stubAuthService) *fiber.App {
	sessions := session.NewManager([]byte("test-secret"), false)
	handler := api.NewAuthHandler(stub, sessions)

	app := fiber.New()
	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)
	app.Get("/dashboard/me", handler.Me)

	return app
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return req
}

func hasSessionCookie(resp *http.Response) bool {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			return true
		}
	}
	return false
}

func TestAuthHandler_Register_FormPostSetsCookieAndRedirects(t *testing.T) {
	app := newAuthApp(&stubAuthService{})

	resp, err := app.Test(formRequest("/register", url.Values{
		"name":     {"Sarah Chen"},
		"email":    {"sarah@example.com"},
		"password": {"password123"},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/dashboard", resp.Header.Get("Location"))
	require.True(t, hasSessionCookie(resp))
}

func TestAuthHandler_Register_RejectsShortPassword(t *testing.T) {
	app := newAuthApp(&stubAuthService{})

	resp, err := app.Test(formRequest("/register", url.Values{
		"name":     {"Sarah Chen"},
		"email":    {"sarah@example.com"},
		"password": {"short"},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.False(t, hasSessionCookie(resp))
}

func TestAuthHandler_Register_DuplicateEmailConflicts(t *testing.T) {
	stub := &stubAuthService{registered: &model.Artisan{ID: uuid.New()}}
	app := newAuthApp(stub)

	resp, err := app.Test(formRequest("/register", url.Values{
		"name":     {"Sarah Chen"},
		"email":    {"sarah@example.com"},
		"password": {"password123"},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Equal(t, false, payload["success"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{loginErr: service.ErrInvalidCredentials}
	app := newAuthApp(stub)

	resp, err := app.Test(formRequest("/login", url.Values{
		"email":    {"sarah@example.com"},
		"password": {"wrong"},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.False(t, hasSessionCookie(resp))
}

func TestAuthHandler_Me_ValidCookieForMissingArtisanIsUnauthorized(t *testing.T) {
	// The route guard only checks presence; Me must still treat a
	// well-signed cookie for a deleted artisan as unauthenticated.
	stub := &stubAuthService{artisan: &model.Artisan{ID: uuid.New(), Name: "Sarah Chen"}}
	app := newAuthApp(stub)

	resp, err := app.Test(formRequest("/login", url.Values{
		"email":    {"sarah@example.com"},
		"password": {"password123"},
	}))
	require.NoError(t, err)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	stub.artisan = nil

	req := httptest.NewRequest(http.MethodGet, "/dashboard/me", nil)
	req.AddCookie(cookie)

	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	app := newAuthApp(&stubAuthService{})

	resp, err := app.Test(formRequest("/logout", url.Values{}))
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			require.Empty(t, cookie.Value)
			require.True(t, cookie.Expires.Before(time.Now()))
		}
	}
}
