package repositories

import (
	"fmt"
	"sync"

	"tsena/internal/models"
	"tsena/pkg/clock"
)

// InMemoryProductRepository is the in-process implementation of
// ProductRepository. It keeps products in a slice because insertion
// order is part of the contract; the catalog is small enough that
// linear lookups are fine.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	newID    IDGenerator
	clock    clock.Clock
}

// NewInMemoryProductRepository creates a new InMemoryProductRepository.
func NewInMemoryProductRepository(ids IDGenerator, clk clock.Clock) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		newID: ids,
		clock: clk,
	}
}

// GetAll returns all products, newest first.
func (r *InMemoryProductRepository) GetAll() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// GetByID returns a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, models.ErrNotFound)
}

// Create assigns a fresh id and creation date, prepends the record and
// returns it.
func (r *InMemoryProductRepository) Create(draft models.Product) models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft.ID = r.newID()
	draft.CreatedAt = r.clock.Now().Format(models.DateLayout)
	r.products = append([]models.Product{draft}, r.products...)
	return draft
}

// Update merges the provided fields into the record matching id.
// Absent ids are ignored.
func (r *InMemoryProductRepository) Update(id string, update models.ProductUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Apply(update)
			return
		}
	}
}

// Delete removes the record matching id. Absent ids are ignored.
func (r *InMemoryProductRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return
		}
	}
}

// GetBySeller returns all products owned by the seller, in repository order.
func (r *InMemoryProductRepository) GetBySeller(sellerID string) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// Seed inserts pre-built records as-is, preserving their ids and dates.
// The given slice becomes the repository order, so callers list fixtures
// newest first.
func (r *InMemoryProductRepository) Seed(products []models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, products...)
}
