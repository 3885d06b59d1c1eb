package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"

	"tsena/internal/models"
	"tsena/internal/repositories"
)

// SessionKey is the fixed durable slot the active session is stored
// under. Absence means anonymous.
const SessionKey = "tsena_session"

// AuthService handles registration, login and the active session.
// The session's public fields are persisted to a durable key-value
// slot and restored on startup without re-validating credentials.
type AuthService struct {
	users      repositories.UserRepository
	store      repositories.KeyValueStore
	verifier   PasswordVerifier
	jwtSecret  []byte
	tokenDurat time.Duration

	mu      sync.RWMutex
	session *models.Session
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repositories.UserRepository, store repositories.KeyValueStore, verifier PasswordVerifier, jwtSecret string) *AuthService {
	return &AuthService{
		users:      users,
		store:      store,
		verifier:   verifier,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Register creates a new user and establishes it as the active session.
// Returns models.ErrDuplicateEmail when the email is already taken; the
// current session is left untouched in that case.
func (s *AuthService) Register(name, email, password string) (*models.Session, error) {
	if existing, err := s.users.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("register %s: %w", email, models.ErrDuplicateEmail)
	}

	stored, err := s.verifier.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare credentials: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: stored,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return s.establish(user), nil
}

// Login authenticates a user and establishes the active session.
// An unknown email and a wrong password are indistinguishable: both
// yield models.ErrInvalidCredentials and the session is unchanged.
func (s *AuthService) Login(email, password string) (*models.Session, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if err := s.verifier.Compare(user.Password, password); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	return s.establish(user), nil
}

// Logout clears the active session and the durable slot.
func (s *AuthService) Logout() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if err := s.store.Delete(SessionKey); err != nil {
		log.Printf("Warning: failed to clear persisted session: %v", err)
	}
}

// Restore loads a previously persisted session from the durable slot.
// The record is trusted as-is; a missing or unparsable slot leaves the
// service anonymous.
func (s *AuthService) Restore() {
	raw, err := s.store.Get(SessionKey)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.Printf("Warning: failed to read persisted session: %v", err)
		}
		return
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		log.Printf("Warning: discarding unparsable persisted session: %v", err)
		return
	}

	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()
}

// CurrentUser returns the active session, if any.
func (s *AuthService) CurrentUser() (*models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, false
	}
	session := *s.session
	return &session, true
}

// IsAuthenticated reports whether an active session exists.
func (s *AuthService) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// establish sets the active session from a user record and persists
// its public projection. Persistence failures are logged, not fatal:
// the in-process session stays valid.
func (s *AuthService) establish(user *models.User) *models.Session {
	session := &models.Session{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	raw, err := json.Marshal(session)
	if err != nil {
		log.Printf("Warning: failed to marshal session: %v", err)
		return session
	}
	if err := s.store.Set(SessionKey, raw); err != nil {
		log.Printf("Warning: failed to persist session: %v", err)
	}
	return session
}

// IssueToken generates a signed JWT for the given session.
func (s *AuthService) IssueToken(session *models.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": session.ID,
		"name":    session.Name,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims
// if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
