// Package middleware holds the gin middlewares shared by every route.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userID"

var (
	errMissingToken = errors.New("missing bearer token")
	errMissingSub   = errors.New("token has no subject")
)

// Authenticate accepts HS256 bearer tokens signed with secret and stores
// their subject as the user id.
func Authenticate(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		userID, err := parseUserID(parser, secret, c.GetHeader("Authorization"))
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func parseUserID(parser *jwt.Parser, secret []byte, header string) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return "", errMissingToken
	}

	var claims jwt.RegisteredClaims
	_, err := parser.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", errMissingSub
	}

	return claims.Subject, nil
}

func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
