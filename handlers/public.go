package handlers

import (
	"errors"
	"net/http"

	"taste-toffel-api/middleware"
	"taste-toffel-api/navigation"

	"github.com/gin-gonic/gin"
)

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Taste Toffel Menu API",
		"version": "1.0.0",
	})
}

// Welcome is the service banner
func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Taste Toffel Menu API",
		"home":    "/api/home",
		"menu":    "/api/menu",
		"health":  "/health",
		"roles":   []string{"guest", "customer", "chef"},
	})
}

// Home returns the Home screen for the caller's role
func (h *Handler) Home(c *gin.Context) {
	view, err := h.state(c).Home(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"home": view, "session": sessionView(middleware.GetSession(c))})
}

// ListRoutes returns the screens the caller may open
func (h *Handler) ListRoutes(c *gin.Context) {
	role := middleware.GetSession(c).Role()
	c.JSON(http.StatusOK, gin.H{
		"role":    role,
		"screens": navigation.Available(role),
	})
}

// GetRoute checks one screen against the caller's role
func (h *Handler) GetRoute(c *gin.Context) {
	screen, err := h.state(c).Navigate(navigation.Route(c.Param("name")))
	if err != nil {
		var rerr *navigation.RouteError
		if errors.As(err, &rerr) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "requires": rerr.Requires})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": screen})
}
