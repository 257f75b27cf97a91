// internal/middleware/auth_middleware.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"bookings-service/internal/domain/user"
	"bookings-service/internal/pkg/jwt"
	"bookings-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

// Principal is the request-scoped security context: the resolved identity
// of the caller. It exists only while the request is handled.
type Principal struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Admin     bool
}

// UserStore resolves a token subject to a stored identity.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type AuthMiddleware struct {
	verifier *jwt.Verifier
	users    UserStore
	logger   *zap.Logger
}

func NewAuthMiddleware(verifier *jwt.Verifier, users UserStore, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// Authenticate is the per-request pipeline. It is fail-open: a missing,
// invalid or unresolvable token never blocks the chain, it just leaves the
// request unauthenticated for downstream authorization to reject.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		if !m.verifier.Validate(token) {
			c.Next()
			return
		}

		subject, err := m.verifier.Subject(token)
		if err != nil {
			m.logger.Error("cannot set user authentication", zap.Error(err))
			c.Next()
			return
		}

		u, err := m.users.FindByEmail(c.Request.Context(), subject)
		if err != nil {
			m.logger.Error("cannot set user authentication", zap.Error(err))
			c.Next()
			return
		}

		c.Set(principalKey, &Principal{
			ID:        u.ID,
			Username:  u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Admin:     u.Admin,
		})
		c.Next()
	}
}

// RequireAuth rejects requests that carry no principal. MUST be used after
// Authenticate().
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c); !ok {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the resolved identity for this request, if any.
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}

	p, ok := v.(*Principal)
	return p, ok
}

// bearerToken extracts the token after the Bearer prefix. The token itself
// may be empty; validation decides what to do with it.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}
