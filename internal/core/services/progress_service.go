package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

// remainingCallTimeout bounds the single upstream call behind the
// "remaining calories" feature. The main aggregation fetchers deliberately
// carry no timeout beyond what the injected HTTP client enforces.
const remainingCallTimeout = 10 * time.Second

// ProgressService runs the aggregation pipeline: cache check, window
// resolution, parallel fan-out to the three sources, per-metric reduction,
// snapshot assembly, cache write. No single source failure aborts the
// pipeline; each degrades to an empty or default value (best-effort merge).
type ProgressService struct {
	backend domain.MetricsSource
	health  domain.HealthDataSource
	goals   domain.GoalRepository
	cache   domain.SnapshotCache

	now func() time.Time
}

func NewProgressService(
	backend domain.MetricsSource,
	health domain.HealthDataSource,
	goals domain.GoalRepository,
	cache domain.SnapshotCache,
) *ProgressService {
	return &ProgressService{
		backend: backend,
		health:  health,
		goals:   goals,
		cache:   cache,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type ProgressInput struct {
	Username    string
	Range       domain.TimeRange
	CustomStart *time.Time
	CustomEnd   *time.Time
}

// GetProgress returns a complete, well-formed snapshot for (user, range).
// It never returns an error: degraded sources produce zero-valued metric
// blocks, and even a programming fault inside the pipeline falls back to the
// canonical empty snapshot rather than propagating to the caller.
func (s *ProgressService) GetProgress(ctx context.Context, input ProgressInput) (snap *domain.ProgressSnapshot) {
	dateRange := domain.ResolveDateRange(input.Range, s.now(), input.CustomStart, input.CustomEnd)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] progress pipeline panicked for user %s: %v", input.Username, r)
			snap = domain.EmptySnapshot(input.Username, input.Range, dateRange, s.now())
		}
	}()

	// Cached snapshots are keyed by (username, range name) only, so two
	// different custom windows inside one freshness window share an entry
	// and the second request gets the first window's snapshot.
	if cached, ok := s.cache.Get(ctx, input.Username, input.Range); ok {
		return cached
	}

	backend, health, goals := s.fetchAll(ctx, input.Username, dateRange)

	snap = &domain.ProgressSnapshot{
		ID:          uuid.NewString(),
		Username:    input.Username,
		TimeRange:   input.Range,
		DateRange:   dateRange,
		Calories:    AggregateCalories(backend.Calories, goals),
		Weight:      AggregateWeight(backend.Weights),
		Exercise:    AggregateExercise(backend.Workouts),
		Steps:       AggregateSteps(health),
		WaterIntake: AggregateWater(goals),
		Sleep:       AggregateSleep(health),
		HeartRate:   AggregateHeartRate(health),
		Goals:       goals,
		LastUpdated: s.now(),
	}

	s.cache.Put(ctx, input.Username, input.Range, snap)

	return snap
}

// fetchAll issues the three source fetches together and waits for all of
// them to settle. Ordering among completions does not matter; every branch
// has its own failure boundary.
func (s *ProgressService) fetchAll(ctx context.Context, username string, r domain.DateRange) (domain.BackendMetrics, domain.HealthMetrics, domain.Goals) {
	var (
		backend domain.BackendMetrics
		health  domain.HealthMetrics
		goals   domain.Goals
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		var err error
		backend, err = s.backend.Fetch(ctx, username, r)
		if err != nil {
			log.Printf("[SOURCE] backend metrics unavailable for user %s: %v", username, err)
		}
	}()

	go func() {
		defer wg.Done()
		health = domain.EmptyHealthMetrics()
		if !s.health.Connected(ctx) {
			return
		}
		read, err := s.health.Read(ctx, username, r)
		if err != nil {
			log.Printf("[SOURCE] health platform read failed for user %s: %v", username, err)
			return
		}
		health = read
	}()

	go func() {
		defer wg.Done()
		goals = domain.DefaultGoals()
		stored, err := s.goals.Get(ctx, username)
		if err != nil {
			if err != domain.ErrGoalsNotFound {
				log.Printf("[SOURCE] goals unavailable for user %s, using defaults: %v", username, err)
			}
			return
		}
		goals = stored
	}()

	wg.Wait()

	return backend, health, goals
}

// RemainingCalories is the lightweight sibling of the full pipeline: one
// upstream call for today's entries, under an explicit timeout, minus the
// user's calorie goal. Unlike GetProgress this surfaces upstream failure.
func (s *ProgressService) RemainingCalories(ctx context.Context, username string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, remainingCallTimeout)
	defer cancel()

	today := domain.ResolveDateRange(domain.TimeRangeDaily, s.now(), nil, nil)

	entries, err := s.backend.FetchCalories(ctx, username, today)
	if err != nil {
		return 0, err
	}

	goals, err := s.goals.Get(ctx, username)
	if err != nil {
		goals = domain.DefaultGoals()
	}

	var consumed float64
	for _, e := range entries {
		consumed += e.Calories.Float64()
	}

	remaining := goals.Calories - consumed
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}
