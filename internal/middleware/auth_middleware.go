package middleware

import (
	"errors"
	"strings"

	"go-catalog-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the Locals key under which RequireAuth stores the decoded
// token claims for downstream handlers and gates.
const ClaimsKey = "claims"

// ClaimsFromCtx returns the authenticated identity attached by RequireAuth,
// or nil when the request did not pass through it.
func ClaimsFromCtx(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(ClaimsKey).(*jwt.Claims)
	return claims
}

// RequireAuth validates the bearer token and attaches the decoded claims to
// the request context. Expired tokens get a distinct reason.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Authorized"})
		}

		// Strip the "Bearer" scheme prefix
		tokenString := authHeader
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			tokenString = parts[1]
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token Expired"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Authorized"})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// RequireRoles passes the request through when the authenticated identity
// holds at least one of the allowed roles. Without an identity the request is
// unauthorized rather than forbidden.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Authorized"})
		}

		for _, role := range claims.Roles {
			for _, a := range allowed {
				if role == a {
					return c.Next()
				}
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden: Insufficient permission"})
	}
}

// RequireAdminEmail is the allow-list variant of the role gate. The list is
// supplied by configuration, not baked into the check.
func RequireAdminEmail(adminEmails []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Authorized"})
		}

		for _, email := range adminEmails {
			if claims.Email == email {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden: Insufficient permission"})
	}
}
