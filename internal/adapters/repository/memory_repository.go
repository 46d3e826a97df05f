package repository

import (
	"context"
	"sync"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

// In-memory repositories used by tests and by local runs without Postgres.

type InMemoryGoalRepository struct {
	store map[string]domain.Goals

	mu sync.RWMutex
}

func NewInMemoryGoalRepository() *InMemoryGoalRepository {
	return &InMemoryGoalRepository{
		store: make(map[string]domain.Goals),
	}
}

func (r *InMemoryGoalRepository) Get(ctx context.Context, username string) (domain.Goals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals, ok := r.store[username]
	if !ok {
		return domain.Goals{}, domain.ErrGoalsNotFound
	}
	return goals, nil
}

func (r *InMemoryGoalRepository) Upsert(ctx context.Context, username string, goals domain.Goals) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[username] = goals
	return nil
}

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	r.store[user.Username] = user
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
