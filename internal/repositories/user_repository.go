package repositories

import (
	"fmt"
	"sync"

	"tsena/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create stores a new user, assigning an id when empty. Returns
	// models.ErrDuplicateEmail when the email is already registered.
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	mu      sync.RWMutex
	users   map[string]models.User // keyed by id
	byEmail map[string]string      // email -> id
	newID   IDGenerator
}

// NewInMemoryUserRepository creates a new InMemoryUserRepository.
func NewInMemoryUserRepository(ids IDGenerator) *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
		newID:   ids,
	}
}

// Create adds a new user. Email uniqueness is enforced here, at
// registration time only.
func (r *InMemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := user.Email
	if _, taken := r.byEmail[key]; taken {
		return fmt.Errorf("user %s: %w", user.Email, models.ErrDuplicateEmail)
	}
	if user.ID == "" {
		user.ID = r.newID()
	}
	r.users[user.ID] = *user
	r.byEmail[key] = user.ID
	return nil
}

// GetByEmail retrieves a user by their email.
func (r *InMemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	user := r.users[id]
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *InMemoryUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	return &user, nil
}
