package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/pkg/cookie"
	"fieldbook/internal/usecase"
	"fieldbook/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

var (
	errNotSignedIn   = errors.New("sign in required")
	errNotAnOwner    = errors.New("owner account required")
	errNotPathOwner  = errors.New("resource belongs to another account")
	errMissingParam  = errors.New("missing path parameter")
	errUnknownAccess = errors.New("unknown access decision")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey = "principal"
	ctxUserIDKey    = "user_id"
	ctxUserRoleKey  = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAccess resolves the caller, if any, and applies the route guard.
// Guard redirects become 401 (sign in) and 403 (go home).
func (m *AuthMiddleware) RequireAccess(access session.Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.authenticate(c)

		var identity *user.User
		if p, ok := GetPrincipal(c); ok {
			identity = &p.User
		}

		switch decision := session.Authorize(identity, access); decision {
		case session.Allow:
			c.Next()
		case session.RedirectLogin:
			httperr.AbortWithError(c, decision.HTTPStatus(), errNotSignedIn, "Access token required", gin.H{"redirect": "/login"})
		case session.RedirectHome:
			httperr.AbortWithError(c, decision.HTTPStatus(), errNotAnOwner, "Insufficient permissions", gin.H{"redirect": "/"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, errUnknownAccess, "Internal server error", nil)
		}
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.RequireAccess(session.AccessAuthenticated)
}

func (m *AuthMiddleware) RequireOwner() gin.HandlerFunc {
	return m.RequireAccess(session.AccessOwner)
}

// RequireSelf must run after RequireAuth: the path parameter has to name the caller.
func (m *AuthMiddleware) RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errNotSignedIn, "Access token required", nil)
			return
		}
		target := c.Param(param)
		if target == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingParam, "Invalid path", nil)
			return
		}
		if target != userID {
			httperr.AbortWithError(c, http.StatusForbidden, errNotPathOwner, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.authenticate(c)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) {
	if _, ok := GetPrincipal(c); ok {
		return
	}
	token := extractToken(c)
	if token == "" {
		return
	}

	principal, err := m.tokenValidator.Authenticate(c.Request.Context(), token)
	if err != nil {
		slog.Warn("Token validation failed in auth middleware", "error", err.Error())
		return
	}

	c.Set(ctxPrincipalKey, principal)
	c.Set(ctxUserIDKey, principal.User.ID)
	c.Set(ctxUserRoleKey, principal.User.Role)
	c.Set("jwt_claims", map[string]any{
		"user_id": principal.User.ID,
		"role":    string(principal.User.Role),
	})
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetPrincipal(c *gin.Context) (usecase.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return usecase.Principal{}, false
	}
	p, ok := v.(usecase.Principal)
	return p, ok
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
