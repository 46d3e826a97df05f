package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

// GoalService owns goal reads and writes. Every successful write invalidates
// the snapshot cache so a dashboard refresh after a goal change can never be
// served stale targets.
type GoalService struct {
	repo  domain.GoalRepository
	cache domain.SnapshotCache
}

func NewGoalService(repo domain.GoalRepository, cache domain.SnapshotCache) *GoalService {
	return &GoalService{repo: repo, cache: cache}
}

func (s *GoalService) Get(ctx context.Context, username string) (domain.Goals, error) {
	goals, err := s.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrGoalsNotFound) {
			return domain.DefaultGoals(), nil
		}
		return domain.Goals{}, fmt.Errorf("goal service: get failed: %w", err)
	}
	return goals, nil
}

func (s *GoalService) Update(ctx context.Context, username string, goals domain.Goals) error {
	if err := goals.Validate(); err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, username, goals); err != nil {
		return fmt.Errorf("goal service: upsert failed: %w", err)
	}

	s.cache.Invalidate(ctx)
	return nil
}
