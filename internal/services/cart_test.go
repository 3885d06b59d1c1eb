package services_test

import (
	"testing"
	"time"

	"tsena/internal/models"
	"tsena/internal/repositories"
	"tsena/internal/services"
	"tsena/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddToCartIncrementsExistingLine(t *testing.T) {
	cart := &services.Cart{}
	product := models.Product{ID: "p1", Title: "Pack Canva", Price: 25000, Image: "img"}

	cart.AddToCart(product)
	cart.AddToCart(product)

	assert.Equal(t, 2, cart.GetTotalItems())
	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Pack Canva", items[0].Title)
}

func TestCart_UpdateQuantityZeroRemovesLine(t *testing.T) {
	cart := &services.Cart{}
	cart.AddToCart(models.Product{ID: "p1", Price: 100})
	cart.AddToCart(models.Product{ID: "p2", Price: 200})

	cart.UpdateQuantity("p1", 0)

	assert.Len(t, cart.Items(), 1)
	assert.Equal(t, "p2", cart.Items()[0].ProductID)
	assert.Equal(t, 1, cart.GetTotalItems())

	cart.UpdateQuantity("p2", -3)
	assert.Empty(t, cart.Items())
}

func TestCart_UpdateQuantityIsAbsolute(t *testing.T) {
	cart := &services.Cart{}
	cart.AddToCart(models.Product{ID: "p1", Price: 100})
	cart.AddToCart(models.Product{ID: "p1", Price: 100})

	cart.UpdateQuantity("p1", 5)

	assert.Equal(t, 5, cart.GetTotalItems())
}

func TestCart_UpdateQuantityUnknownProductIsNoop(t *testing.T) {
	cart := &services.Cart{}
	cart.AddToCart(models.Product{ID: "p1", Price: 100})

	cart.UpdateQuantity("missing", 4)

	assert.Equal(t, 1, cart.GetTotalItems())
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := &services.Cart{}
	cart.AddToCart(models.Product{ID: "p1", Price: 100})
	cart.AddToCart(models.Product{ID: "p2", Price: 200})

	cart.RemoveFromCart("p1")
	assert.Equal(t, []string{"p2"}, lineProductIDs(cart.Items()))

	cart.ClearCart()
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.GetTotalItems())
	assert.Equal(t, int64(0), cart.GetTotalPrice())
}

func TestCart_TotalPriceUsesSnapshotQuantities(t *testing.T) {
	cart := &services.Cart{}
	cart.AddToCart(models.Product{ID: "p1", Price: 25000})
	cart.AddToCart(models.Product{ID: "p2", Price: 15000})
	cart.UpdateQuantity("p1", 3)

	assert.Equal(t, int64(3*25000+15000), cart.GetTotalPrice())
}

func newCartFixture(t *testing.T) (*services.CartService, *repositories.InMemoryProductRepository) {
	t.Helper()
	repo := repositories.NewInMemoryProductRepository(repositories.UUIDGenerator,
		clock.NewMockClock(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	repo.Seed(fixtureProducts())
	return services.NewCartService(repo, repositories.UUIDGenerator), repo
}

func TestCartService_PriceDriftDoesNotReachExistingLines(t *testing.T) {
	carts, repo := newCartFixture(t)

	cartID, err := carts.Add("", "1")
	assert.NoError(t, err)

	// The seller changes the price after the buyer added the product.
	newPrice := int64(99000)
	repo.Update("1", models.ProductUpdate{Price: &newPrice})

	_, view := carts.View(cartID)
	assert.Equal(t, int64(25000), view.Items[0].Price)
	assert.Equal(t, int64(25000), view.TotalPrice)

	// A fresh cart snapshots the new price.
	otherID, err := carts.Add("", "1")
	assert.NoError(t, err)
	_, other := carts.View(otherID)
	assert.Equal(t, int64(99000), other.TotalPrice)
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	carts, _ := newCartFixture(t)

	_, err := carts.Add("", "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCartService_EnsureCartGeneratesAndReusesIDs(t *testing.T) {
	carts, _ := newCartFixture(t)

	id1, err := carts.Add("", "1")
	assert.NoError(t, err)
	assert.NotEmpty(t, id1)

	// Same id reaches the same cart.
	id2, err := carts.Add(id1, "1")
	assert.NoError(t, err)
	assert.Equal(t, id1, id2)

	_, view := carts.View(id1)
	assert.Equal(t, 2, view.TotalItems)

	// Carts are isolated from each other.
	otherID, err := carts.Add("", "2")
	assert.NoError(t, err)
	assert.NotEqual(t, id1, otherID)
	_, other := carts.View(otherID)
	assert.Equal(t, 1, other.TotalItems)
}

func lineProductIDs(lines []models.CartLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.ProductID
	}
	return out
}
