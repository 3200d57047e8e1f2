package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TanpaKamil/admin/internal/services"
	"github.com/TanpaKamil/admin/internal/utils"
)

const (
	// AuthCookieName is the session cookie, holding "Bearer <token>".
	AuthCookieName = "Authorization"
	// UserIDKey is the gin context key the guard sets for handlers.
	UserIDKey = "user_id"
	// UserIDHeader is propagated on the forwarded request.
	UserIDHeader = "X-User-ID"
)

type GuardConfig struct {
	Secret string
}

// RouteGuard authorizes every request except an explicit allow-list. API
// paths fail with 401 JSON; page paths degrade to a redirect so a human
// operator always lands on the login form instead of an error page.
func RouteGuard(cfg GuardConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if allowListed(path) {
			c.Next()
			return
		}

		isAPI := strings.HasPrefix(path, "/api/")
		isLoginPage := path == "/login"

		cookie, err := c.Cookie(AuthCookieName)
		if err != nil || cookie == "" {
			if isAPI {
				c.AbortWithStatusJSON(http.StatusUnauthorized, utils.MessageResponse{Message: "Invalid token"})
				return
			}
			if !isLoginPage {
				c.Redirect(http.StatusTemporaryRedirect, "/login")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(cookie, " ")
		if !found || scheme != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.MessageResponse{Message: "Invalid token"})
			return
		}

		claims, err := services.ParseToken(token, cfg.Secret)
		if err != nil {
			// Expired or forged sessions are treated as no session at all.
			if isAPI {
				c.AbortWithStatusJSON(http.StatusUnauthorized, utils.MessageResponse{Message: "Invalid token"})
				return
			}
			if !isLoginPage {
				c.Redirect(http.StatusTemporaryRedirect, "/login")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Request.Header.Set(UserIDHeader, claims.UserID)

		// Signed-in operators have no business on the login form.
		if isLoginPage {
			c.Redirect(http.StatusTemporaryRedirect, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

func allowListed(path string) bool {
	switch {
	case strings.HasPrefix(path, "/static/"),
		path == "/favicon.ico",
		path == "/healthz",
		path == "/api/login",
		path == "/api/logout":
		return true
	}
	return false
}
