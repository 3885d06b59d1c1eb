package repositories

import (
	"tsena/internal/models"

	"github.com/google/uuid"
)

// IDGenerator produces unique ids for new records. Uniqueness is the
// only requirement; production wiring uses UUIDs.
type IDGenerator func() string

// UUIDGenerator is the production IDGenerator.
func UUIDGenerator() string {
	return uuid.New().String()
}

// ProductRepository defines the interface for catalog data access.
// The collection is ordered: Create prepends, so repository order is
// newest-first, and that order is what "relevance" preserves.
type ProductRepository interface {
	// GetAll returns the catalog in repository order.
	GetAll() []models.Product
	// GetByID returns the matching product or models.ErrNotFound.
	GetByID(id string) (*models.Product, error)
	// Create assigns a fresh id and creation date to the draft,
	// prepends it and returns the stored record.
	Create(draft models.Product) models.Product
	// Update merges the non-nil fields into the matching record.
	// It is a no-op when the id is absent.
	Update(id string, update models.ProductUpdate)
	// Delete removes the matching record. No-op when absent.
	Delete(id string)
	// GetBySeller returns the seller's products in repository order.
	GetBySeller(sellerID string) []models.Product
}
