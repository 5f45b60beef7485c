package routes

import (
	"taste-toffel-api/handlers"
	"taste-toffel-api/middleware"
	"taste-toffel-api/models"
	"taste-toffel-api/navigation"
	"taste-toffel-api/session"

	"github.com/gin-gonic/gin"
)

// Deps is what the route table needs from main
type Deps struct {
	Handler      *handlers.Handler
	Tokens       *session.Tokens
	LoginLimiter *middleware.IPRateLimiter
}

func SetupRoutes(r *gin.Engine, d Deps) {
	h := d.Handler

	r.GET("/health", h.Health)
	r.GET("/", h.Welcome)

	// Every /api request carries a session; no token means guest.
	api := r.Group("/api")
	api.Use(middleware.SessionLoader(d.Tokens))
	{
		// Auth
		api.POST("/auth/chef-login", d.LoginLimiter.Middleware(), h.ChefLogin)
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/logout", h.Logout)
		api.GET("/profile", h.GetProfile)

		// Screens
		api.GET("/home", h.Home)
		api.GET("/routes", h.ListRoutes)
		api.GET("/routes/:name", h.GetRoute)

		// Menu (read)
		api.GET("/categories", h.ListCategories)
		api.GET("/menu", h.GetMenu)
		api.GET("/menu/:id", h.GetMenuItem)
	}

	// Menu (chef)
	chef := api.Group("/menu")
	{
		chef.POST("", middleware.RouteRequired(navigation.RouteAddMenu), h.AddMenuItem)
		chef.DELETE("/:id", middleware.RoleRequired(models.RoleChef), h.DeleteMenuItem)
	}
}
