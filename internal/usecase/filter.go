package usecase

import (
	"strings"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

// FilterSpec describes one catalog query. A zero-valued predicate is
// inactive: empty query, empty category set, empty rating set, and a
// zero discount threshold all mean "no restriction". The price range
// is always applied, inclusive on both bounds, against the discounted
// price.
type FilterSpec struct {
	Query       string
	Categories  []string
	PriceMin    int
	PriceMax    int
	MinDiscount int
	Ratings     []int
}

// DefaultListingSpec is the configuration of the general product
// listing view.
func DefaultListingSpec() FilterSpec {
	return FilterSpec{PriceMin: 0, PriceMax: 100000}
}

// DefaultDealsSpec is the configuration of the deals view: a tighter
// price range and only discounted products ("any discount" is a
// threshold of 1, so undiscounted products never qualify).
func DefaultDealsSpec() FilterSpec {
	return FilterSpec{PriceMin: 0, PriceMax: 60000, MinDiscount: 1}
}

// ApplyFilter narrows products to those matching every active
// predicate of spec, preserving source order. It never mutates its
// inputs; an empty result is a valid outcome.
func ApplyFilter(products []domain.Product, spec FilterSpec) []domain.Product {
	query := strings.ToLower(spec.Query)

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if len(spec.Categories) > 0 && !containsString(spec.Categories, p.Category) {
			continue
		}
		price := p.DiscountedPrice()
		if price < spec.PriceMin || price > spec.PriceMax {
			continue
		}
		if spec.MinDiscount > 0 && p.Discount < spec.MinDiscount {
			continue
		}
		if len(spec.Ratings) > 0 && !containsInt(spec.Ratings, p.RatingBucket()) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, n := range set {
		if n == v {
			return true
		}
	}
	return false
}
