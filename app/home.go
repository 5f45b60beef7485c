package app

import (
	"context"

	"taste-toffel-api/models"
	"taste-toffel-api/navigation"
)

// HomeView is the role-dependent content of the Home screen.
type HomeView struct {
	Title        string              `json:"title"`
	Subtitle     string              `json:"subtitle"`
	Badge        string              `json:"badge,omitempty"`
	WelcomeTitle string              `json:"welcome_title"`
	WelcomeText  string              `json:"welcome_text"`
	MenuButton   string              `json:"menu_button"`
	ItemCount    int                 `json:"item_count"`
	Screens      []navigation.Screen `json:"screens"`
}

func (s *State) Home(ctx context.Context) (HomeView, error) {
	n, err := s.catalog.Len(ctx)
	if err != nil {
		return HomeView{}, err
	}
	v := HomeView{
		Title:     "Taste Toffel",
		ItemCount: n,
		Screens:   navigation.Available(s.session.Role()),
	}

	profile, _ := s.session.Profile()
	switch s.session.Role() {
	case models.RoleChef:
		v.Subtitle = "Chef Management Portal"
		v.Badge = "Chef Mode"
		v.WelcomeTitle = "Welcome, Chef!"
		v.WelcomeText = "Manage your restaurant menu and create amazing culinary experiences."
		v.MenuButton = "Manage Menu"
	case models.RoleCustomer:
		v.Subtitle = "Fine Dining Experience"
		v.Badge = "Welcome, " + profile.Name
		v.WelcomeTitle = "Welcome back, " + profile.Name + "!"
		v.WelcomeText = "Ready to explore our delicious menu?"
		v.MenuButton = "View Menu"
	default:
		v.Subtitle = "Fine Dining Experience"
		v.WelcomeTitle = "Welcome to Taste Toffel!"
		v.WelcomeText = "Discover our exquisite menu crafted by our master chef."
		v.MenuButton = "View Menu"
	}
	return v, nil
}
