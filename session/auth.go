package session

import (
	"errors"
	"strings"
	"time"

	"taste-toffel-api/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// chefAccounts is the fixed chef allow-list. It is a plain comparison on
// purpose; there is no account store behind it.
var chefAccounts = map[string]string{
	"chef":  "chef123",
	"admin": "admin123",
}

// ChefLogin signs in as chef. On a credential mismatch cur is returned
// unchanged together with ErrInvalidCredentials.
func ChefLogin(cur Session, username, password string, now time.Time) (Session, error) {
	want, ok := chefAccounts[username]
	if !ok || want != password {
		return cur, ErrInvalidCredentials
	}
	return Chef(models.Profile{
		Name:     username,
		Email:    username + "@tastetoffel.local",
		JoinDate: now.UTC(),
	}), nil
}

// SignUpInput is the customer sign-up form.
type SignUpInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// SignUp creates a customer session. A rejected form returns cur unchanged
// with a *models.ValidationError.
func SignUp(cur Session, in SignUpInput, now time.Time) (Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if err := validateSignUp(in); err != nil {
		return cur, err
	}
	return Customer(models.Profile{
		Name:        in.Name,
		Email:       in.Email,
		JoinDate:    now.UTC(),
		Preferences: []string{},
	}), nil
}

func validateSignUp(in SignUpInput) error {
	err := models.Validate.Struct(in)
	if err == nil {
		return nil
	}
	fieldErrs, ok := models.FieldErrors(err)
	if !ok {
		return err
	}

	verr := &models.ValidationError{}
	var missing, mismatch bool
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fe.Field())
		switch fe.Tag() {
		case "required":
			missing = true
		case "eqfield":
			mismatch = true
		}
	}
	switch {
	case missing:
		verr.Message = "Please fill in all fields"
	case mismatch:
		verr.Message = "Passwords do not match"
	default:
		verr.Message = "Password should be at least 6 characters"
	}
	return verr
}

// Logout always ends in a guest session, whatever came before.
func Logout(Session) Session {
	return Guest()
}
