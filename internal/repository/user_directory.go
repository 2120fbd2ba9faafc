package repository

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

// memoryUserDirectory holds the registered users for the lifetime of
// the process. Ids come from an explicit monotonic counter so they are
// never reused, regardless of how the directory contents change.
type memoryUserDirectory struct {
	mu     sync.Mutex
	users  []domain.User
	nextID int64
	log    *logrus.Logger
}

func NewMemoryUserDirectory(seed []domain.User, logger *logrus.Logger) domain.UserDirectory {
	d := &memoryUserDirectory{
		users:  append([]domain.User(nil), seed...),
		nextID: 1,
		log:    logger,
	}
	for _, u := range seed {
		if u.ID >= d.nextID {
			d.nextID = u.ID + 1
		}
	}
	return d
}

func (d *memoryUserDirectory) CreateUser(name, email, password string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Email == email {
			d.log.Warnf("Repository: Attempted to create user with duplicate email: %s", email)
			return nil, domain.ErrDuplicateEmail
		}
	}

	user := domain.User{
		ID:       d.nextID,
		Name:     name,
		Email:    email,
		Password: password,
	}
	d.nextID++
	d.users = append(d.users, user)

	d.log.Infof("Repository: User created successfully with ID: %d, Email: %s", user.ID, user.Email)
	return &user, nil
}

func (d *memoryUserDirectory) GetUserByEmail(email string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	d.log.Debugf("Repository: User with email %s not found", email)
	return nil, domain.ErrNotFound
}
