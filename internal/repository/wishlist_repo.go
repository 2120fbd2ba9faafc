package repository

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

type stateWishlistRepository struct {
	store *StateStore
	log   *logrus.Logger
}

func NewStateWishlistRepository(store *StateStore, logger *logrus.Logger) domain.WishlistRepository {
	return &stateWishlistRepository{store: store, log: logger}
}

func (r *stateWishlistRepository) Load() ([]domain.Product, error) {
	raw, err := r.store.Get(KeyWishlist)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		r.log.Warnf("Repository: Discarding corrupt wishlist record: %v", err)
		return nil, nil
	}
	r.log.Debugf("Repository: Restored wishlist with %d products", len(products))
	return products, nil
}

func (r *stateWishlistRepository) Save(products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.store.Put(KeyWishlist, raw)
}
