// Package session keeps per browser session state in a signed cookie.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/librelibrary/librelibrary/internal/carousel"
)

const (
	CookieName = "librelibrary"
	contextKey = "session"
)

type Session struct {
	Offsets carousel.Offsets
}

type Config struct {
	Secret  []byte
	Timeout time.Duration
}

func New() Session {
	return Session{Offsets: carousel.Offsets{}}
}

// Middleware parses the session cookie, if any. Requests with a missing,
// tampered or expired cookie go on with an empty session.
func Middleware(secret []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    secret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + CookieName,
		ContextKey:    contextKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

// FromContext returns the session of the request. The result is never nil.
func FromContext(c *fiber.Ctx) Session {
	s := New()
	t, ok := c.Locals(contextKey).(*jwt.Token)
	if !ok {
		return s
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return s
	}
	offsetsMap, ok := claims["offsets"].(map[string]interface{})
	if !ok {
		return s
	}
	for name, value := range offsetsMap {
		if offset, ok := value.(float64); ok {
			s.Offsets[name] = int(offset)
		}
	}
	return s
}

// Save signs s and sends it back as a cookie that lasts until the browser is closed.
func Save(c *fiber.Ctx, s Session, cfg Config) error {
	signedToken, err := GenerateToken(s, time.Now().Add(cfg.Timeout), cfg.Secret)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signedToken,
		Path:     "/",
		Secure:   false,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func GenerateToken(s Session, expiration time.Time, secret []byte) (string, error) {
	offsets := s.Offsets
	if offsets == nil {
		offsets = carousel.Offsets{}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"offsets": offsets,
		"exp":     jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}
