package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanpaKamil/admin/internal/http/middleware"
)

// Page handlers render the minimal operator shell. The real views live in
// the frontend; these exist so the route guard's page semantics (redirects
// instead of JSON errors) have something to guard.

func DashboardPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"UserID": c.GetString(middleware.UserIDKey),
	})
}

func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}
