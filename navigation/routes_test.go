package navigation

import (
	"errors"
	"testing"

	"taste-toffel-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routesOf(screens []Screen) []Route {
	out := make([]Route, len(screens))
	for i, s := range screens {
		out[i] = s.Route
	}
	return out
}

func TestAddMenuOnlyForChef(t *testing.T) {
	assert.NoError(t, CanAccess(models.RoleChef, RouteAddMenu))

	for _, role := range []models.Role{models.RoleGuest, models.RoleCustomer} {
		err := CanAccess(role, RouteAddMenu)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRouteUnavailable))

		var rerr *RouteError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, models.RoleChef, rerr.Requires)
		assert.Equal(t, role, rerr.Role)
	}
}

func TestOtherRoutesAlwaysReachable(t *testing.T) {
	for _, role := range []models.Role{models.RoleGuest, models.RoleCustomer, models.RoleChef} {
		for _, r := range []Route{RouteHome, RouteCourses, RouteLogin, RouteSignUp} {
			assert.NoError(t, CanAccess(role, r), "%s -> %s", role, r)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	err := CanAccess(models.RoleChef, "Orders")
	assert.True(t, errors.Is(err, ErrUnknownRoute))
}

func TestAvailable(t *testing.T) {
	assert.Equal(t,
		[]Route{RouteHome, RouteCourses, RouteLogin, RouteSignUp},
		routesOf(Available(models.RoleGuest)))
	assert.Equal(t,
		[]Route{RouteHome, RouteCourses, RouteAddMenu, RouteLogin, RouteSignUp},
		routesOf(Available(models.RoleChef)))
}

func TestTableIsNotMutatedThroughAll(t *testing.T) {
	all := All()
	all[2].Requires = ""
	assert.Error(t, CanAccess(models.RoleGuest, RouteAddMenu))
}

func TestLookupTitles(t *testing.T) {
	s, ok := Lookup(RouteCourses)
	require.True(t, ok)
	assert.Equal(t, "Menu Courses", s.Title)

	_, ok = Lookup("Nope")
	assert.False(t, ok)
}
