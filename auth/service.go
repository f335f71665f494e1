// Package auth resolves the static staff credentials and keeps the signed-in
// session. Two fixed accounts share one literal password; this is a
// development stand-in, not a credential store.
package auth

import (
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/storage"
	"github.com/riquelima/gourmetgo/store"
)

// sessionKeyPrefix namespaces the persisted session per user; each browser
// held its own copy of the "gourmetgo-currentUser" record, so one shared
// server-side key would let logins overwrite each other.
const sessionKeyPrefix = "gourmetgo-currentUser:"

func sessionKey(userID string) string { return sessionKeyPrefix + userID }

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	store    *store.Store
	sessions storage.Storage
	secret   []byte
}

func NewService(st *store.Store, sessions storage.Storage, secret string) *Service {
	return &Service{store: st, sessions: sessions, secret: []byte(secret)}
}

// SignIn resolves email against the staff table and checks the password.
// Success persists the user record as the current session and returns a
// signed token; failure persists nothing.
func (s *Service) SignIn(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	user.PasswordHash = ""
	raw, err := json.Marshal(user)
	if err != nil {
		return models.User{}, "", err
	}
	if err := s.sessions.Set(sessionKey(user.ID), raw); err != nil {
		return models.User{}, "", err
	}

	token, err := GenerateToken(s.secret, user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// SignOut clears the persisted session for userID.
func (s *Service) SignOut(ctx context.Context, userID string) error {
	return s.sessions.Remove(sessionKey(userID))
}

// CurrentUser restores the persisted session for userID, or nil when none
// exists or the stored record is unreadable.
func (s *Service) CurrentUser(ctx context.Context, userID string) *models.User {
	raw, ok := s.sessions.Get(sessionKey(userID))
	if !ok {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil
	}
	return &user
}

// Secret exposes the signing key for the token middleware.
func (s *Service) Secret() []byte { return s.secret }
