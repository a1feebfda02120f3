package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hungrypaws/hungry-paws-api/internal/auth"
	"github.com/hungrypaws/hungry-paws-api/internal/config"
)

const (
	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"
	ContextTokenID = "tokenID"

	AuthCookieName = "hp_token"
)

type principal struct {
	UserID  uint
	IsAdmin bool
	TokenID string
}

// AuthMiddleware accepts the token from the Authorization header (API
// clients) or from the auth cookie (browser pages and fetch calls).
func AuthMiddleware(cfg *config.Config, revocations auth.Revocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, code := resolvePrincipal(c, cfg, revocations)
		if code != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":    false,
				"error_code": code,
				"message":    "Not logged in.",
			})
			return
		}

		c.Set(ContextUserID, p.UserID)
		c.Set(ContextIsAdmin, p.IsAdmin)
		c.Set(ContextTokenID, p.TokenID)

		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAdmin, ok := c.Get(ContextIsAdmin); !ok || !isAdmin.(bool) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success":    false,
				"error_code": "admin_only",
				"message":    "Admin access required.",
			})
			return
		}
		c.Next()
	}
}

// WebAuth gates server-rendered pages: no valid cookie means a redirect to
// the landing page instead of a JSON error.
func WebAuth(cfg *config.Config, revocations auth.Revocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, code := resolvePrincipal(c, cfg, revocations)
		if code != "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(ContextUserID, p.UserID)
		c.Set(ContextIsAdmin, p.IsAdmin)
		c.Set(ContextTokenID, p.TokenID)

		c.Next()
	}
}

func resolvePrincipal(c *gin.Context, cfg *config.Config, revocations auth.Revocations) (principal, string) {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return principal{}, "missing_token"
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return principal{}, "invalid_token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return principal{}, "invalid_token_claims"
	}

	userID, ok := claims["sub"].(float64)
	if !ok {
		return principal{}, "invalid_token_payload"
	}

	isAdmin, _ := claims["isAdmin"].(bool)
	tokenID, _ := claims["jti"].(string)

	if revocations != nil && tokenID != "" && revocations.IsRevoked(c.Request.Context(), tokenID) {
		return principal{}, "token_revoked"
	}

	return principal{
		UserID:  uint(userID),
		IsAdmin: isAdmin,
		TokenID: tokenID,
	}, ""
}

func tokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}

	return ""
}
