package handlers

import (
	"errors"
	"net/http"

	"taste-toffel-api/logx"
	"taste-toffel-api/middleware"
	"taste-toffel-api/session"

	"github.com/gin-gonic/gin"
)

type ChefLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChefLogin checks the chef allow-list and returns a chef session token
func (h *Handler) ChefLogin(c *gin.Context) {
	var req ChefLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st := h.state(c)
	if err := st.ChefLogin(req.Username, req.Password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			logx.Warn("chef login rejected", "username", req.Username)
		}
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(st.Session())
	if err != nil {
		respondError(c, err)
		return
	}
	h.revokeCaller(c)

	logx.Info("chef logged in", "username", req.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome, Chef!",
		"token":   token,
		"session": sessionView(st.Session()),
	})
}

// SignUp creates a customer session
func (h *Handler) SignUp(c *gin.Context) {
	var req session.SignUpInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st := h.state(c)
	if err := st.SignUp(req); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(st.Session())
	if err != nil {
		respondError(c, err)
		return
	}
	h.revokeCaller(c)

	profile, _ := st.Session().Profile()
	logx.Info("customer signed up", "email", profile.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thanks for joining Taste Toffel, " + profile.Name + "!",
		"token":   token,
		"session": sessionView(st.Session()),
	})
}

// Logout ends the caller's session, whatever it was. Guests get a guest
// session back too.
func (h *Handler) Logout(c *gin.Context) {
	st := h.state(c)
	prev := st.Session().Role()
	st.Logout()
	h.revokeCaller(c)

	logx.Info("logged out", "previous_role", string(prev))
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
		"session": sessionView(st.Session()),
	})
}

// GetProfile returns the caller's current session
func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": sessionView(middleware.GetSession(c))})
}

// revokeCaller retires the token the request came with. A new login
// replaces the previous session, so its token must stop working.
func (h *Handler) revokeCaller(c *gin.Context) {
	h.tokens.Revoke(middleware.GetClaims(c))
}
