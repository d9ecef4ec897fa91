package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	applog "closetcircle/internal/log"
)

// sessionClaims is the shape of the identity provider's session token. The
// email claim is the user's identity; Subject is a fallback.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AttachIdentity verifies the session token (cookie or bearer header) and, on
// success, exposes the email under c.Locals("identity"). Requests without a
// valid token proceed anonymously; RequireIdentity gates mutating routes.
func AttachIdentity(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies("session")
		if raw == "" {
			if h := c.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				raw = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if raw == "" {
			return c.Next()
		}

		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			applog.Security(c, "session.token.invalid", nil)
			return c.Next()
		}

		email := claims.Email
		if email == "" {
			email = claims.Subject
		}
		if email != "" {
			c.Locals("identity", email)
		}
		return c.Next()
	}
}

// RequireIdentity rejects requests without a verified session. Per the
// authorization model, presence of a session is the only check.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals("identity").(string); !ok || id == "" {
			applog.Security(c, "access.denied", nil)
			return jsonError(c, fiber.StatusUnauthorized, "sign in required")
		}
		return c.Next()
	}
}

func identity(c *fiber.Ctx) string {
	id, _ := c.Locals("identity").(string)
	return id
}
