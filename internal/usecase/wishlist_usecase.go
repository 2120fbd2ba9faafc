package usecase

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

// WishlistStore owns the saved-products set. A product appears at most
// once; adds are idempotent and preserve insertion order.
type WishlistStore interface {
	AddToWishlist(product domain.Product)
	RemoveFromWishlist(productID int)
	IsInWishlist(productID int) bool
	Items() []domain.Product
	WishlistCount() int
	Subscribe(listener func())
}

type wishlistStore struct {
	mu        sync.Mutex
	products  []domain.Product
	repo      domain.WishlistRepository
	listeners []func()
	log       *logrus.Logger
}

func NewWishlistStore(repo domain.WishlistRepository, logger *logrus.Logger) WishlistStore {
	s := &wishlistStore{repo: repo, log: logger}
	products, err := repo.Load()
	if err != nil {
		logger.Warnf("Use Case: Could not restore wishlist, starting empty: %v", err)
	} else {
		s.products = products
	}
	return s
}

func (s *wishlistStore) AddToWishlist(product domain.Product) {
	s.mu.Lock()
	for _, p := range s.products {
		if p.ID == product.ID {
			s.mu.Unlock()
			return
		}
	}
	s.products = append(s.products, product)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	s.log.Infof("Use Case: Added product ID %d to wishlist", product.ID)
}

func (s *wishlistStore) RemoveFromWishlist(productID int) {
	s.mu.Lock()
	removed := false
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	s.log.Infof("Use Case: Removed product ID %d from wishlist", productID)
}

func (s *wishlistStore) IsInWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *wishlistStore) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *wishlistStore) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *wishlistStore) Subscribe(listener func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *wishlistStore) persistLocked() {
	if err := s.repo.Save(s.products); err != nil {
		s.log.Errorf("Use Case: Failed to persist wishlist: %v", err)
	}
}

func (s *wishlistStore) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, l := range listeners {
		l()
	}
}
