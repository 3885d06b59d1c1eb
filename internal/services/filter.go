package services

import (
	"sort"
	"strings"
	"time"

	"tsena/internal/models"
)

// ApplyFilters runs the catalog filter pipeline over products and
// returns a new ordered slice. Stages apply in a fixed order: search,
// category, price range, top-seller gate, sort. The input slice is
// never mutated.
func ApplyFilters(products []models.Product, search string, opts models.FilterOptions) []models.Product {
	result := make([]models.Product, 0, len(products))

	search = strings.TrimSpace(search)
	query := strings.ToLower(search)

	for _, p := range products {
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		if len(opts.Categories) > 0 && !containsString(opts.Categories, p.CategorySlug) {
			continue
		}
		if p.Price < opts.PriceRange.Min || p.Price > opts.PriceRange.Max {
			continue
		}
		if opts.TopSellers && !p.IsTopSeller {
			continue
		}
		result = append(result, p)
	}

	// Stable, so products with equal keys keep their filtered order.
	switch opts.SortBy {
	case models.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case models.SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case models.SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return parseCreatedAt(result[i].CreatedAt).After(parseCreatedAt(result[j].CreatedAt))
		})
	default:
		// relevance: keep the order the filter stages produced
	}

	return result
}

// matchesSearch reports whether the product matches the lowercased
// query on any of title, description, category or seller name.
func matchesSearch(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.Seller), query)
}

// parseCreatedAt parses a product date, falling back to the zero time
// so malformed dates sort last under "newest".
func parseCreatedAt(value string) time.Time {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
