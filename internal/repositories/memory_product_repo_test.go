package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"tsena/internal/models"
	"tsena/internal/repositories"
	"tsena/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func newRepoFixture() (*repositories.InMemoryProductRepository, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return repositories.NewInMemoryProductRepository(ids, clk), clk
}

func TestInMemoryProductRepository_CreateAssignsIDAndDate(t *testing.T) {
	repo, clk := newRepoFixture()

	draft := models.Product{Title: "Pack Canva", Price: 25000, CategorySlug: "canva"}
	created := repo.Create(draft)

	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "2024-03-01", created.CreatedAt)

	// Everything else survives unchanged.
	draft.ID = created.ID
	draft.CreatedAt = created.CreatedAt
	assert.Equal(t, draft, created)

	fetched, err := repo.GetByID("id-1")
	assert.NoError(t, err)
	assert.Equal(t, created, *fetched)

	clk.Advance(48 * time.Hour)
	second := repo.Create(models.Product{Title: "E-book SEO", Price: 15000})
	assert.Equal(t, "2024-03-03", second.CreatedAt)
}

func TestInMemoryProductRepository_CreatePrepends(t *testing.T) {
	repo, _ := newRepoFixture()

	repo.Create(models.Product{Title: "Premier"})
	repo.Create(models.Product{Title: "Deuxième"})
	repo.Create(models.Product{Title: "Troisième"})

	all := repo.GetAll()
	assert.Equal(t, []string{"Troisième", "Deuxième", "Premier"},
		[]string{all[0].Title, all[1].Title, all[2].Title})
}

func TestInMemoryProductRepository_GetByIDNotFound(t *testing.T) {
	repo, _ := newRepoFixture()

	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestInMemoryProductRepository_DeleteThenGetByID(t *testing.T) {
	repo, _ := newRepoFixture()
	created := repo.Create(models.Product{Title: "Pack Canva"})

	repo.Delete(created.ID)

	_, err := repo.GetByID(created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, repo.GetAll())

	// Deleting again is a no-op.
	repo.Delete(created.ID)
}

func TestInMemoryProductRepository_UpdateMergesAndIgnoresAbsent(t *testing.T) {
	repo, _ := newRepoFixture()
	created := repo.Create(models.Product{Title: "Pack Canva", Price: 25000, Likes: 10})

	price := int64(30000)
	repo.Update(created.ID, models.ProductUpdate{Price: &price})

	updated, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(30000), updated.Price)
	assert.Equal(t, "Pack Canva", updated.Title)
	assert.Equal(t, 10, updated.Likes)

	// Absent id: no panic, no change.
	repo.Update("missing", models.ProductUpdate{Price: &price})
	assert.Len(t, repo.GetAll(), 1)
}

func TestInMemoryProductRepository_GetBySellerKeepsOrder(t *testing.T) {
	repo, _ := newRepoFixture()
	repo.Seed([]models.Product{
		{ID: "1", Title: "A", SellerID: "s1"},
		{ID: "2", Title: "B", SellerID: "s2"},
		{ID: "3", Title: "C", SellerID: "s1"},
	})

	mine := repo.GetBySeller("s1")
	assert.Equal(t, []string{"1", "3"}, []string{mine[0].ID, mine[1].ID})
	assert.Empty(t, repo.GetBySeller("nobody"))
}

func TestInMemoryProductRepository_GetAllReturnsCopy(t *testing.T) {
	repo, _ := newRepoFixture()
	repo.Create(models.Product{Title: "Pack Canva"})

	all := repo.GetAll()
	all[0].Title = "mutated"

	fresh := repo.GetAll()
	assert.Equal(t, "Pack Canva", fresh[0].Title)
}
