package middleware

import (
	"net/http"

	"sistema_cvt/internal/adapter/session"
	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/pkg"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the opaque session token issued at login.
const TokenHeader = "X-Session-Token"

const sessionKey = "cvt-session"

var (
	errMissingSession = pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Missing or invalid session token", http.StatusUnauthorized)
	errForbidden      = pkg.NewDomainErrorSimple("SUPERVISOR_REQUIRED", "Supervisor role required", http.StatusForbidden)
)

// RequireSession resolves the session token and stores the session in the
// request context. Requests without a valid token are rejected with 401.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}

		sess, err := store.Get(token)
		if err != nil {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireSupervisor gates supervisor-only routes. Must run after
// RequireSession.
func RequireSupervisor() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil || sess.User.Role != entities.RoleSupervisor {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session attached by RequireSession, or nil.
func SessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
