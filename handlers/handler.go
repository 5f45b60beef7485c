package handlers

import (
	"errors"
	"net/http"
	"time"

	"taste-toffel-api/app"
	"taste-toffel-api/catalog"
	"taste-toffel-api/logx"
	"taste-toffel-api/middleware"
	"taste-toffel-api/models"
	"taste-toffel-api/navigation"
	"taste-toffel-api/session"

	"github.com/gin-gonic/gin"
)

// Handler carries what every endpoint needs: the shared catalog and the
// session token issuer.
type Handler struct {
	catalog *catalog.Catalog
	tokens  *session.Tokens
	now     func() time.Time
}

// New builds the handlers. A nil clock means time.Now.
func New(cat *catalog.Catalog, tokens *session.Tokens, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{catalog: cat, tokens: tokens, now: now}
}

// state starts a controller on the caller's session
func (h *Handler) state(c *gin.Context) *app.State {
	return app.New(h.catalog, middleware.GetSession(c), h.now)
}

// respondError maps domain errors to HTTP responses
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "fields": verr.Fields})
	case errors.Is(err, session.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, app.ErrForbidden), errors.Is(err, navigation.ErrRouteUnavailable):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, navigation.ErrUnknownRoute):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logx.Error(err, "request failed", "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}

type menuItemView struct {
	models.MenuItem
	DisplayPrice string `json:"display_price"`
}

func viewOf(item models.MenuItem) menuItemView {
	return menuItemView{MenuItem: item, DisplayPrice: item.DisplayPrice()}
}

func viewsOf(items []models.MenuItem) []menuItemView {
	out := make([]menuItemView, len(items))
	for i, item := range items {
		out[i] = viewOf(item)
	}
	return out
}

// sessionView is the client-facing form of a session
func sessionView(s session.Session) gin.H {
	out := gin.H{"role": s.Role()}
	if p, ok := s.Profile(); ok {
		out["user"] = p
	}
	return out
}
