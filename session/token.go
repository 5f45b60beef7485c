package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"taste-toffel-api/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrGuestToken   = errors.New("guest sessions carry no token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// Claims is what a session token carries: the role and the profile it was
// issued for.
type Claims struct {
	Role        models.Role `json:"role"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	JoinDate    time.Time   `json:"join_date"`
	Preferences []string    `json:"preferences,omitempty"`
	jwt.RegisteredClaims
}

// Tokens issues and checks signed session tokens, and remembers the ones
// revoked by logout until they would have expired anyway.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewTokens returns an HS256 issuer. A nil clock means time.Now.
func NewTokens(secret []byte, issuer string, ttl time.Duration, now func() time.Time) *Tokens {
	if now == nil {
		now = time.Now
	}
	return &Tokens{
		secret:  secret,
		issuer:  issuer,
		ttl:     ttl,
		now:     now,
		revoked: make(map[string]time.Time),
	}
}

// Issue signs a token for a customer or chef session.
func (t *Tokens) Issue(s Session) (string, error) {
	p, ok := s.Profile()
	if !ok {
		return "", ErrGuestToken
	}
	now := t.now()
	claims := Claims{
		Role:        s.Role(),
		Name:        p.Name,
		Email:       p.Email,
		JoinDate:    p.JoinDate,
		Preferences: p.Preferences,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    t.issuer,
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates a token and rebuilds the session it stands for.
func (t *Tokens) Parse(tokenStr string) (Session, *Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Guest(), nil, err
	}
	if !token.Valid {
		return Guest(), nil, errors.New("invalid token")
	}
	if t.isRevoked(claims.ID) {
		return Guest(), nil, ErrTokenRevoked
	}

	profile := models.Profile{
		Name:        claims.Name,
		Email:       claims.Email,
		JoinDate:    claims.JoinDate,
		Preferences: claims.Preferences,
	}
	switch claims.Role {
	case models.RoleChef:
		return Chef(profile), claims, nil
	case models.RoleCustomer:
		if profile.Preferences == nil {
			profile.Preferences = []string{}
		}
		return Customer(profile), claims, nil
	default:
		return Guest(), nil, fmt.Errorf("token carries unusable role %q", claims.Role)
	}
}

// Revoke stops the token behind claims from being accepted again.
func (t *Tokens) Revoke(claims *Claims) {
	if claims == nil || claims.ID == "" {
		return
	}
	exp := t.now().Add(t.ttl)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	for id, until := range t.revoked {
		if now.After(until) {
			delete(t.revoked, id)
		}
	}
	t.revoked[claims.ID] = exp
}

func (t *Tokens) isRevoked(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.revoked[id]
	return ok
}
