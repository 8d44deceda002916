package middleware

import (
	"go-drive/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates bearer tokens from the identity provider and
// injects the caller's account id into the request context
func AuthMiddleware(skipAuth bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			// Inject dummy context for dev
			dummyClaims := &utils.SessionClaims{
				AccountID: "dev-account-id",
			}
			c.Locals(utils.SessionClaimsKey, dummyClaims)
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		// Extract token from "Bearer <token>"
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		token := authHeader[7:]
		claims, err := utils.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(utils.SessionClaimsKey, claims)
		return c.Next()
	}
}

// CallerAccountID reads the account id set by AuthMiddleware. Empty string
// means the request never went through auth.
func CallerAccountID(c *fiber.Ctx) string {
	claims, ok := c.Locals(utils.SessionClaimsKey).(*utils.SessionClaims)
	if !ok {
		return ""
	}
	return claims.AccountID
}
