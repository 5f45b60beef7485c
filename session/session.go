// Package session holds who is using the app: a guest, a signed-up
// customer, or a chef, and the transitions between them.
package session

import (
	"taste-toffel-api/models"
)

// Session is one of Guest, Customer(profile) or Chef(profile). The zero
// value is a guest.
type Session struct {
	role    models.Role
	profile models.Profile
}

func Guest() Session {
	return Session{role: models.RoleGuest}
}

func Customer(p models.Profile) Session {
	p.Role = models.RoleCustomer
	return Session{role: models.RoleCustomer, profile: cloneProfile(p)}
}

func Chef(p models.Profile) Session {
	p.Role = models.RoleChef
	return Session{role: models.RoleChef, profile: cloneProfile(p)}
}

func (s Session) Role() models.Role {
	if s.role == "" {
		return models.RoleGuest
	}
	return s.role
}

// Profile returns the signed-in user's record; ok is false for guests.
func (s Session) Profile() (p models.Profile, ok bool) {
	if s.Role() == models.RoleGuest {
		return models.Profile{}, false
	}
	return cloneProfile(s.profile), true
}

func (s Session) IsChef() bool  { return s.Role() == models.RoleChef }
func (s Session) IsGuest() bool { return s.Role() == models.RoleGuest }

func cloneProfile(p models.Profile) models.Profile {
	prefs := make([]string, len(p.Preferences))
	copy(prefs, p.Preferences)
	p.Preferences = prefs
	return p
}
