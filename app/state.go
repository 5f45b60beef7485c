// Package app is the application-state controller: it owns one session and
// a handle on the shared catalog, and every change goes through its setter
// methods. A State is not safe for concurrent use; the HTTP layer builds
// one per request around the caller's session.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taste-toffel-api/catalog"
	"taste-toffel-api/models"
	"taste-toffel-api/navigation"
	"taste-toffel-api/session"
)

var ErrForbidden = errors.New("only a chef can change the menu")

type State struct {
	catalog *catalog.Catalog
	session session.Session
	now     func() time.Time
}

// New starts a controller on cat with the given session. A nil clock means
// time.Now.
func New(cat *catalog.Catalog, s session.Session, now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	return &State{catalog: cat, session: s, now: now}
}

func (s *State) Session() session.Session { return s.session }

// ChefLogin replaces the session with a chef session. On failure the
// session is kept.
func (s *State) ChefLogin(username, password string) error {
	next, err := session.ChefLogin(s.session, username, password, s.now())
	s.session = next
	return err
}

// SignUp replaces the session with a new customer session. On failure the
// session is kept.
func (s *State) SignUp(in session.SignUpInput) error {
	next, err := session.SignUp(s.session, in, s.now())
	s.session = next
	return err
}

func (s *State) Logout() {
	s.session = session.Logout(s.session)
}

// Navigate resolves route for the current role.
func (s *State) Navigate(route navigation.Route) (navigation.Screen, error) {
	if err := navigation.CanAccess(s.session.Role(), route); err != nil {
		return navigation.Screen{}, err
	}
	screen, _ := navigation.Lookup(route)
	return screen, nil
}

// Courses is what the Courses screen lists for filter.
func (s *State) Courses(ctx context.Context, filter models.Category) ([]models.MenuItem, error) {
	return s.catalog.Filter(ctx, filter)
}

// AddCourse submits the add-course form. Only roles that can open the
// AddMenu screen may do so.
func (s *State) AddCourse(ctx context.Context, in catalog.NewMenuItem) (models.MenuItem, error) {
	if err := navigation.CanAccess(s.session.Role(), navigation.RouteAddMenu); err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrForbidden, err)
	}
	return s.catalog.Add(ctx, in)
}

// DeleteItem removes a menu item. Unknown ids are not an error.
func (s *State) DeleteItem(ctx context.Context, id string) (bool, error) {
	if !s.session.IsChef() {
		return false, ErrForbidden
	}
	return s.catalog.Remove(ctx, id)
}
