package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// localSubject is the Locals key holding the authenticated token subject.
const localSubject = "subject"

// bearerAuth validates HS256 bearer tokens. When issuer is non-empty the
// token's iss claim must equal it.
func bearerAuth(secret, issuer string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return jsonError(c, fiber.StatusUnauthorized, "missing Authorization header")
		}
		tokenStr := strings.TrimSpace(header)
		if scheme, rest, ok := strings.Cut(tokenStr, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenStr = strings.TrimSpace(rest)
		}
		if tokenStr == "" {
			return jsonError(c, fiber.StatusUnauthorized, "empty token")
		}

		opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})}
		if issuer != "" {
			opts = append(opts, jwt.WithIssuer(issuer))
		}
		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
			return key, nil
		}, opts...)
		if err != nil || !token.Valid {
			return jsonError(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(localSubject, claims.Subject)
		return c.Next()
	}
}
