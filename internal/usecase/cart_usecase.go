package usecase

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

// CartStore owns the ordered (product, quantity) collection. Every
// mutation is written through to persistent storage before the
// operation returns, and observers are notified synchronously.
// Mutations referencing unknown product ids are tolerant no-ops.
type CartStore interface {
	AddToCart(product domain.Product, quantity int)
	RemoveFromCart(productID int)
	UpdateQuantity(productID, quantity int)
	ClearCart()
	Items() []domain.CartItem
	CartTotal() int
	CartCount() int
	Subscribe(listener func())
}

type cartStore struct {
	mu        sync.Mutex
	items     []domain.CartItem
	repo      domain.CartRepository
	listeners []func()
	log       *logrus.Logger
}

// NewCartStore rehydrates the cart from persistent storage; a missing
// or unreadable record starts empty.
func NewCartStore(repo domain.CartRepository, logger *logrus.Logger) CartStore {
	s := &cartStore{repo: repo, log: logger}
	items, err := repo.Load()
	if err != nil {
		logger.Warnf("Use Case: Could not restore cart, starting empty: %v", err)
	} else {
		s.items = items
	}
	return s
}

func (s *cartStore) AddToCart(product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, domain.CartItem{Product: product, Quantity: quantity})
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	s.log.Infof("Use Case: Added %d x product ID %d to cart", quantity, product.ID)
}

func (s *cartStore) RemoveFromCart(productID int) {
	s.mu.Lock()
	removed := false
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
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

	s.log.Infof("Use Case: Removed product ID %d from cart", productID)
}

func (s *cartStore) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	updated := false
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			updated = true
			break
		}
	}
	if !updated {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	s.log.Infof("Use Case: Set quantity of product ID %d to %d", productID, quantity)
}

func (s *cartStore) ClearCart() {
	s.mu.Lock()
	s.items = nil
	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	s.log.Info("Use Case: Cart cleared")
}

func (s *cartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.items...)
}

// CartTotal sums the discounted line totals, each rounded once at the
// line-item level.
func (s *cartStore) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

func (s *cartStore) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *cartStore) Subscribe(listener func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *cartStore) persistLocked() {
	if err := s.repo.Save(s.items); err != nil {
		s.log.Errorf("Use Case: Failed to persist cart: %v", err)
	}
}

func (s *cartStore) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, l := range listeners {
		l()
	}
}
