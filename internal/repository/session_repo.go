package repository

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

type stateSessionRepository struct {
	store *StateStore
	log   *logrus.Logger
}

func NewStateSessionRepository(store *StateStore, logger *logrus.Logger) domain.SessionRepository {
	return &stateSessionRepository{store: store, log: logger}
}

// Load returns the persisted session user, or nil when nothing usable
// is stored. Corrupt JSON degrades to "no stored session".
func (r *stateSessionRepository) Load() (*domain.User, error) {
	raw, err := r.store.Get(KeyUser)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		r.log.Warnf("Repository: Discarding corrupt session record: %v", err)
		return nil, nil
	}
	r.log.Debugf("Repository: Restored session for user ID %d", user.ID)
	return &user, nil
}

func (r *stateSessionRepository) Save(user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Put(KeyUser, raw)
}

func (r *stateSessionRepository) Clear() error {
	return r.store.Delete(KeyUser)
}
