package usecase

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// In-memory repository fakes. They keep the last saved value so tests
// can assert write-through behavior and simulate restarts.

type memSessionRepo struct {
	stored *domain.User
}

func (r *memSessionRepo) Load() (*domain.User, error) {
	if r.stored == nil {
		return nil, nil
	}
	user := *r.stored
	return &user, nil
}

func (r *memSessionRepo) Save(user *domain.User) error {
	u := *user
	r.stored = &u
	return nil
}

func (r *memSessionRepo) Clear() error {
	r.stored = nil
	return nil
}

type memCartRepo struct {
	stored []domain.CartItem
	saves  int
}

func (r *memCartRepo) Load() ([]domain.CartItem, error) {
	return append([]domain.CartItem(nil), r.stored...), nil
}

func (r *memCartRepo) Save(items []domain.CartItem) error {
	r.stored = append([]domain.CartItem(nil), items...)
	r.saves++
	return nil
}

type memWishlistRepo struct {
	stored []domain.Product
}

func (r *memWishlistRepo) Load() ([]domain.Product, error) {
	return append([]domain.Product(nil), r.stored...), nil
}

func (r *memWishlistRepo) Save(products []domain.Product) error {
	r.stored = append([]domain.Product(nil), products...)
	return nil
}

// Sample products used across store tests.
var (
	testHeadphones = domain.Product{
		ID: 4, Name: "Sony WH-1000XM5", Description: "Wireless Noise Cancelling Headphones",
		Price: 29990, Category: "Electronics", Rating: 4.8, Reviews: 1245, Stock: 12, Discount: 20,
	}
	testShirt = domain.Product{
		ID: 3, Name: "Men's Regular Fit Shirt", Description: "Cotton Blend Full Sleeve Casual Shirt",
		Price: 1299, Category: "Fashion", Rating: 4.2, Reviews: 3200, Stock: 150, Discount: 5,
	}
	testIPad = domain.Product{
		ID: 5, Name: "Apple iPad 10th Generation", Description: "10.9-inch, Wi-Fi, 64GB, Blue",
		Price: 44900, Category: "Electronics", Rating: 4.6, Reviews: 987, Stock: 8,
	}
)
