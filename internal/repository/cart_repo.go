package repository

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

type stateCartRepository struct {
	store *StateStore
	log   *logrus.Logger
}

func NewStateCartRepository(store *StateStore, logger *logrus.Logger) domain.CartRepository {
	return &stateCartRepository{store: store, log: logger}
}

func (r *stateCartRepository) Load() ([]domain.CartItem, error) {
	raw, err := r.store.Get(KeyCart)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		r.log.Warnf("Repository: Discarding corrupt cart record: %v", err)
		return nil, nil
	}
	r.log.Debugf("Repository: Restored cart with %d items", len(items))
	return items, nil
}

func (r *stateCartRepository) Save(items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Put(KeyCart, raw)
}
