// Package navigation is the app's route table and the check that decides
// which screens a role may open. The table is fixed; only the check looks
// at the session.
package navigation

import (
	"errors"
	"fmt"

	"taste-toffel-api/models"
)

// Route names a screen of the app
type Route string

const (
	RouteHome    Route = "Home"
	RouteCourses Route = "Courses"
	RouteAddMenu Route = "AddMenu"
	RouteLogin   Route = "Login"
	RouteSignUp  Route = "SignUp"
)

var (
	ErrUnknownRoute     = errors.New("unknown route")
	ErrRouteUnavailable = errors.New("route not available for this role")
)

// Screen is one entry of the route table. An empty Requires means every
// role, guests included, may open it.
type Screen struct {
	Route    Route       `json:"route"`
	Title    string      `json:"title"`
	Requires models.Role `json:"requires,omitempty"`
}

// routeTable is the authoritative list of screens, in navigator order
var routeTable = []Screen{
	{Route: RouteHome, Title: "Taste Toffel"},
	{Route: RouteCourses, Title: "Menu Courses"},
	{Route: RouteAddMenu, Title: "Add New Course", Requires: models.RoleChef},
	{Route: RouteLogin, Title: "Login"},
	{Route: RouteSignUp, Title: "Sign Up"},
}

// Build a lookup map for O(1) checks
var screenByRoute = func() map[Route]Screen {
	m := make(map[Route]Screen, len(routeTable))
	for _, s := range routeTable {
		m[s.Route] = s
	}
	return m
}()

// RouteError says which role a screen needs.
type RouteError struct {
	Route    Route
	Role     models.Role
	Requires models.Role
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("%s is only available to the %s role (current role: %s)", e.Route, e.Requires, e.Role)
}

func (e *RouteError) Unwrap() error { return ErrRouteUnavailable }

// Lookup returns the table entry for route.
func Lookup(route Route) (Screen, bool) {
	s, ok := screenByRoute[route]
	return s, ok
}

// CanAccess checks whether role may open route
func CanAccess(role models.Role, route Route) error {
	s, ok := screenByRoute[route]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	if s.Requires != "" && s.Requires != role {
		return &RouteError{Route: route, Role: role, Requires: s.Requires}
	}
	return nil
}

// Available returns the screens role may open, in table order
func Available(role models.Role) []Screen {
	out := make([]Screen, 0, len(routeTable))
	for _, s := range routeTable {
		if CanAccess(role, s.Route) == nil {
			out = append(out, s)
		}
	}
	return out
}

// All returns the full route table for documentation
func All() []Screen {
	out := make([]Screen, len(routeTable))
	copy(out, routeTable)
	return out
}
