// Package session issues and reads the artisan session cookie. The
// cookie carries an HMAC-signed token rather than the raw artisan id,
// so a forged or tampered value reads the same as no session at all.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "artisan-id"
	TTL        = 7 * 24 * time.Hour
)

type Manager struct {
	secret []byte
	secure bool
}

// NewManager builds a session manager. secure controls the cookie's
// Secure flag and should be on in production.
func NewManager(secret []byte, secure bool) *Manager {
	return &Manager{secret: secret, secure: secure}
}

func (m *Manager) signToken(artisanID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": artisanID.String(),
		"exp": time.Now().Add(TTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) parseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, jwt.ErrInvalidKey
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, jwt.ErrInvalidKey
	}

	return uuid.Parse(sub)
}

func (m *Manager) Issue(c *fiber.Ctx, artisanID uuid.UUID) error {
	token, err := m.signToken(artisanID)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return nil
}

// ArtisanID reads the session cookie. Any parse, signature, or expiry
// failure reads as "not logged in".
func (m *Manager) ArtisanID(c *fiber.Ctx) (uuid.UUID, bool) {
	value := c.Cookies(CookieName)
	if value == "" {
		return uuid.Nil, false
	}

	id, err := m.parseToken(value)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func (m *Manager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
