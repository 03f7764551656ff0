// Package auth is the identity boundary. The rest of the program consumes
// only a stable user id and a signed-in flag; how sessions are produced and
// validated stays behind this package.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 30 * 24 * time.Hour

// Session is everything the core is allowed to know about the signed-in user.
type Session struct {
	UserID   string
	SignedIn bool
}

var ErrNotSignedIn = errors.New("not signed in (run: tb login <user>)")

// Login issues a signed session token for userID and stores it at path.
func Login(path, secret, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errors.New("user id is required")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Logout removes the stored session, if any.
func Logout(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// Current returns the active session. An absent, invalid, or expired token is
// simply a signed-out state, not an error.
func Current(path, secret string) Session {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Session{}
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(string(raw)), &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return Session{}
	}
	return Session{UserID: claims.Subject, SignedIn: true}
}

// Require returns the current session or ErrNotSignedIn.
func Require(path, secret string) (Session, error) {
	s := Current(path, secret)
	if !s.SignedIn {
		return Session{}, ErrNotSignedIn
	}
	return s, nil
}
