package repository

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
)

// UserDB defines the account storage interface
type UserDB interface {
	CreateUser(user model.User) (model.User, error)
	GetUserByEmail(email string) (model.User, error)
	GetUserByID(userID string) (model.User, error)
}

// MemoryUserRepo is a concurrency-safe in-memory implementation of UserDB
type MemoryUserRepo struct {
	mu      sync.RWMutex
	users   map[string]model.User // key: userID
	byEmail map[string]string     // key: email -> value: userID
}

// NewMemoryUserRepo creates a new in-memory user repository instance
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		users:   make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

// CreateUser stores a new account. Email uniqueness is enforced inside the
// same critical section as the insert.
func (r *MemoryUserRepo) CreateUser(user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return model.User{}, fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrEmailTaken)
	}

	if user.UserID == "" {
		user.UserID = utils.GenerateID()
	}
	if user.RegisteredOn == 0 {
		user.RegisteredOn = time.Now().Unix()
	}

	r.users[user.UserID] = user
	r.byEmail[user.Email] = user.UserID
	return user, nil
}

// GetUserByEmail returns the account registered under the given email
func (r *MemoryUserRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// GetUserByID returns the account with the given id
func (r *MemoryUserRepo) GetUserByID(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}
