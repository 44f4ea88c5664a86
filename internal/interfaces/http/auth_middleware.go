package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Locals keys del contexto Fiber.
const (
	LocalCredential = "credential"
)

// CookieConfig cookie que transporta la credencial bearer.
type CookieConfig struct {
	Name   string
	Secure bool
}

// CredentialMiddleware extrae la credencial de la cookie (o, en su defecto, de un
// header "Authorization: Bearer <token>") y la deja en c.Locals. No valida nada:
// la validez la decide el backend a través del resolver de sesión.
func CredentialMiddleware(cookie CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok := extractCredential(c, cookie.Name); tok != "" {
			c.Locals(LocalCredential, tok)
		}
		return c.Next()
	}
}

func extractCredential(c *fiber.Ctx, cookieName string) string {
	if tok := strings.TrimSpace(c.Cookies(cookieName)); tok != "" {
		return tok
	}
	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetCredential devuelve la credencial del contexto (después de CredentialMiddleware).
func GetCredential(c *fiber.Ctx) string {
	v := c.Locals(LocalCredential)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// clearCredential expira la cookie y la quita del contexto.
func clearCredential(c *fiber.Ctx, cookie CookieConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(LocalCredential, "")
}
