package services

import (
	"fmt"
	"sync"

	"tsena/internal/models"
	"tsena/internal/repositories"
)

// Cart holds quantity-keyed line items for one buyer. Lines keep the
// title, price and image the product had when it was first added; the
// snapshot never tracks later catalog changes. Lines stay in insertion
// order. Cart itself is not synchronized; CartService serializes access.
type Cart struct {
	lines []models.CartLine
}

// AddToCart adds one unit of the product. An existing line for the
// same product id is incremented, otherwise a new line snapshots the
// product's title, price and image.
func (c *Cart) AddToCart(p models.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// UpdateQuantity sets a line's quantity to the given absolute value.
// A quantity of zero or less removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveFromCart(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveFromCart removes the line for the product, if present.
func (c *Cart) RemoveFromCart(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// ClearCart empties all lines.
func (c *Cart) ClearCart() {
	c.lines = nil
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// GetTotalItems returns the sum of quantities across all lines.
func (c *Cart) GetTotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// GetTotalPrice returns the sum of snapshotted price times quantity
// across all lines.
func (c *Cart) GetTotalPrice() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// CartView is the derived state recomputed on every read.
type CartView struct {
	Items      []models.CartLine `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
}

// CartService keeps one Cart per cart id, lazily created. Products are
// resolved against the catalog at add-time only.
type CartService struct {
	products repositories.ProductRepository
	newID    repositories.IDGenerator

	mu    sync.Mutex
	carts map[string]*Cart
}

// NewCartService creates a new CartService.
func NewCartService(products repositories.ProductRepository, ids repositories.IDGenerator) *CartService {
	return &CartService{
		products: products,
		newID:    ids,
		carts:    make(map[string]*Cart),
	}
}

// EnsureCart returns the cart for the given id, creating it if needed.
// An empty id gets a freshly generated one.
func (s *CartService) EnsureCart(cartID string) (string, *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked(cartID)
}

func (s *CartService) ensureLocked(cartID string) (string, *Cart) {
	if cartID == "" {
		cartID = s.newID()
	}
	cart, ok := s.carts[cartID]
	if !ok {
		cart = &Cart{}
		s.carts[cartID] = cart
	}
	return cartID, cart
}

// Add resolves the product and adds one unit of it to the cart.
func (s *CartService) Add(cartID, productID string) (string, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return cartID, fmt.Errorf("add to cart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cartID, cart := s.ensureLocked(cartID)
	cart.AddToCart(*p)
	return cartID, nil
}

// UpdateQuantity sets the absolute quantity of a cart line.
func (s *CartService) UpdateQuantity(cartID, productID string, quantity int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cartID, cart := s.ensureLocked(cartID)
	cart.UpdateQuantity(productID, quantity)
	return cartID
}

// Remove removes a cart line unconditionally.
func (s *CartService) Remove(cartID, productID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cartID, cart := s.ensureLocked(cartID)
	cart.RemoveFromCart(productID)
	return cartID
}

// Clear empties the cart.
func (s *CartService) Clear(cartID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cartID, cart := s.ensureLocked(cartID)
	cart.ClearCart()
	return cartID
}

// View returns the cart's lines and totals.
func (s *CartService) View(cartID string) (string, CartView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cartID, cart := s.ensureLocked(cartID)
	return cartID, CartView{
		Items:      cart.Items(),
		TotalItems: cart.GetTotalItems(),
		TotalPrice: cart.GetTotalPrice(),
	}
}
