package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

func TestInMemoryGoalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryGoalRepository()

	t.Run("Missing user returns not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "margherita")
		assert.ErrorIs(t, err, domain.ErrGoalsNotFound)
	})

	t.Run("Upsert then Get", func(t *testing.T) {
		goals := domain.Goals{Calories: 1900, Steps: 8000, Water: 2500, Exercise: 45, Sleep: 7}
		require.NoError(t, repo.Upsert(ctx, "margherita", goals))

		got, err := repo.Get(ctx, "margherita")
		require.NoError(t, err)
		assert.Equal(t, goals, got)
	})

	t.Run("Upsert overwrites", func(t *testing.T) {
		updated := domain.Goals{Calories: 2100, Steps: 9000, Water: 2000, Exercise: 30, Sleep: 8}
		require.NoError(t, repo.Upsert(ctx, "margherita", updated))

		got, err := repo.Get(ctx, "margherita")
		require.NoError(t, err)
		assert.Equal(t, 2100.0, got.Calories)
	})
}

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()

	newUser := func(t *testing.T, username, email string) *domain.User {
		t.Helper()
		u, err := domain.NewUser("id-"+username, username, email)
		require.NoError(t, err)
		return u
	}

	t.Run("Create then lookup by email and username", func(t *testing.T) {
		repo := NewInMemoryUserRepository()
		u := newUser(t, "margherita", "margherita@example.com")
		require.NoError(t, repo.Create(ctx, u))

		byEmail, err := repo.GetByEmail(ctx, "margherita@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)

		byUsername, err := repo.GetByUsername(ctx, "margherita")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byUsername.ID)
	})

	t.Run("Duplicate username is rejected", func(t *testing.T) {
		repo := NewInMemoryUserRepository()
		require.NoError(t, repo.Create(ctx, newUser(t, "margherita", "one@example.com")))

		err := repo.Create(ctx, newUser(t, "margherita", "two@example.com"))
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		repo := NewInMemoryUserRepository()
		require.NoError(t, repo.Create(ctx, newUser(t, "margherita", "same@example.com")))

		err := repo.Create(ctx, newUser(t, "giacomo", "same@example.com"))
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("Unknown lookups return not found", func(t *testing.T) {
		repo := NewInMemoryUserRepository()

		_, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
