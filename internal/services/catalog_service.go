package services

import (
	"fmt"
	"log"

	"tsena/internal/models"
	"tsena/internal/repositories"
	"tsena/pkg/clock"
)

// EventPublisher publishes catalog lifecycle events. The RabbitMQ
// client satisfies it; a nil publisher disables events.
type EventPublisher interface {
	PublishCatalogEvent(event string, payload map[string]interface{}) error
}

// SellerStats are the derived aggregates shown on the seller dashboard.
// EstimatedRevenue is price times review count per product (a review
// stands in for a sale), summed over the seller's catalog.
type SellerStats struct {
	ProductCount     int   `json:"product_count"`
	TotalLikes       int   `json:"total_likes"`
	AveragePrice     int64 `json:"average_price"`
	EstimatedRevenue int64 `json:"estimated_revenue"`
}

// CatalogService handles business logic for the product catalog:
// listing through the filter pipeline, owner-gated CRUD, dashboard
// aggregates and product social actions.
type CatalogService struct {
	repo   repositories.ProductRepository
	ids    repositories.IDGenerator
	clock  clock.Clock
	events EventPublisher
}

// NewCatalogService creates a new CatalogService. events may be nil.
func NewCatalogService(repo repositories.ProductRepository, ids repositories.IDGenerator, clk clock.Clock, events EventPublisher) *CatalogService {
	return &CatalogService{
		repo:   repo,
		ids:    ids,
		clock:  clk,
		events: events,
	}
}

// ListProducts runs the catalog through the filter pipeline.
func (s *CatalogService) ListProducts(search string, opts models.FilterOptions) []models.Product {
	return ApplyFilters(s.repo.GetAll(), search, opts)
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct stores a new product stamped with the acting seller.
func (s *CatalogService) CreateProduct(seller *models.Session, draft models.Product) models.Product {
	draft.Seller = seller.Name
	draft.SellerID = seller.ID
	if draft.Comments == nil {
		draft.Comments = []models.Comment{}
	}

	created := s.repo.Create(draft)
	s.publish("product.created", created)
	return created
}

// UpdateProduct merges the update into the seller's product. Products
// owned by someone else yield models.ErrForbidden.
func (s *CatalogService) UpdateProduct(actorID, id string, update models.ProductUpdate) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.SellerID != actorID {
		return fmt.Errorf("product %s: %w", id, models.ErrForbidden)
	}

	s.repo.Update(id, update)
	updated, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	s.publish("product.updated", *updated)
	return nil
}

// DeleteProduct removes the seller's product.
func (s *CatalogService) DeleteProduct(actorID, id string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.SellerID != actorID {
		return fmt.Errorf("product %s: %w", id, models.ErrForbidden)
	}

	s.repo.Delete(id)
	s.publish("product.deleted", *existing)
	return nil
}

// GetSellerProducts returns the seller's products in catalog order.
func (s *CatalogService) GetSellerProducts(sellerID string) []models.Product {
	return s.repo.GetBySeller(sellerID)
}

// GetSellerStats computes the dashboard aggregates for a seller.
func (s *CatalogService) GetSellerStats(sellerID string) SellerStats {
	products := s.repo.GetBySeller(sellerID)

	stats := SellerStats{ProductCount: len(products)}
	for _, p := range products {
		stats.TotalLikes += p.Likes
		reviews := p.ReviewCount
		if reviews < 1 {
			reviews = 1
		}
		stats.EstimatedRevenue += p.Price * int64(reviews)
		stats.AveragePrice += p.Price
	}
	if len(products) > 0 {
		stats.AveragePrice /= int64(len(products))
	}
	return stats
}

// AddComment appends a comment to the product and returns it.
func (s *CatalogService) AddComment(productID, author, text string) (*models.Comment, error) {
	existing, err := s.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        s.ids(),
		Author:    author,
		Text:      text,
		CreatedAt: s.clock.Now().Format(models.DateLayout),
	}
	comments := append(existing.Comments, comment)
	s.repo.Update(productID, models.ProductUpdate{Comments: &comments})
	return &comment, nil
}

// LikeProduct increments the product's like counter and returns the
// new count.
func (s *CatalogService) LikeProduct(productID string) (int, error) {
	existing, err := s.repo.GetByID(productID)
	if err != nil {
		return 0, err
	}

	likes := existing.Likes + 1
	s.repo.Update(productID, models.ProductUpdate{Likes: &likes})
	return likes, nil
}

// publish sends a catalog event when a publisher is configured.
// Publishing failures are logged and never fail the catalog operation.
func (s *CatalogService) publish(event string, p models.Product) {
	if s.events == nil {
		return
	}
	payload := map[string]interface{}{
		"product_id": p.ID,
		"title":      p.Title,
		"seller_id":  p.SellerID,
		"price":      p.Price,
	}
	if err := s.events.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s for product %s: %v", event, p.ID, err)
	}
}
