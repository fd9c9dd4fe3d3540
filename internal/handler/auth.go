package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminRealm = `Basic realm="Admin"`

// AdminAuth checks HTTP Basic credentials against the single admin account.
// Every request is checked on its own; there are no sessions.
type AdminAuth struct {
	username string
	password string
}

func NewAdminAuth(username, password string) *AdminAuth {
	return &AdminAuth{username: username, password: password}
}

// Authorized reports whether r carries the admin credentials. An empty
// configured password never matches.
func (a *AdminAuth) Authorized(r *http.Request) bool {
	if a.password == "" {
		return false
	}

	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(a.password)) == 1
	return userOK && passOK
}

// RequirePage guards browser pages: unauthorized requests get a challenge so
// the browser prompts for credentials.
func (a *AdminAuth) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Authorized(c.Request) {
			c.Header("WWW-Authenticate", adminRealm)
			c.String(http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAPI guards JSON endpoints.
func (a *AdminAuth) RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Authorized(c.Request) {
			c.Header("WWW-Authenticate", adminRealm)
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
