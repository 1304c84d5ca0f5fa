package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/profileranker/backend/models"
)

const (
	// AuthClaimsKey is the key used to store JWT claims in gin context
	AuthClaimsKey = "auth_claims"

	// TokenCookie holds the signed session token
	TokenCookie = "token"
	// RoleCookie mirrors the role for the front-end. It is informational
	// only; authorization always uses the role inside the verified token.
	RoleCookie = "role"
)

// Page prefixes gated by role
var pageRoles = map[string]string{
	"/ar-dashboard":    models.RoleARRequestor,
	"/recruiter-admin": models.RoleRecruiterAdmin,
}

// AuthMiddleware creates a middleware for JWT authentication. The token is
// read from the token cookie or from an Authorization: Bearer header.
func AuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Unauthorized",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Invalid or expired session",
				Code:    http.StatusUnauthorized,
				Details: err.Error(),
			})
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose role is not listed.
// It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetAuthClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Unauthorized",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
			Error: "Forbidden",
			Code:  http.StatusForbidden,
		})
	}
}

// PageGate redirects to / when a role-specific page is requested without a
// session of that role. Other paths pass through untouched.
func PageGate(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		required, gated := requiredPageRole(c.Request.URL.Path)
		if !gated {
			c.Next()
			return
		}

		tokenString, ok := extractToken(c)
		if ok {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil && claims.Role == required {
				c.Set(AuthClaimsKey, claims)
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusFound, "/")
		c.Abort()
	}
}

func requiredPageRole(path string) (string, bool) {
	for prefix, role := range pageRoles {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return role, true
		}
	}
	return "", false
}

func extractToken(c *gin.Context) (string, bool) {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie, true
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" && parts[1] != "" {
		return parts[1], true
	}

	return "", false
}

// SetSessionCookies sets the httpOnly token and role cookies
func SetSessionCookies(c *gin.Context, token, role string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookie, token, maxAge, "/", "", secure, true)
	c.SetCookie(RoleCookie, role, maxAge, "/", "", secure, true)
}

// ClearSessionCookies expires both session cookies
func ClearSessionCookies(c *gin.Context, secure bool) {
	SetSessionCookies(c, "", "", -1, secure)
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}
