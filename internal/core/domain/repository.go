package domain

import (
	"context"
)

type UserRepository interface {
	// Create persists a new account.
	Create(ctx context.Context, user *User) error

	// GetByEmail retrieves an account by its (lowercased) email address.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByUsername retrieves an account by its (lowercased) username.
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type GoalRepository interface {
	// Get returns the stored goal targets for a user, or ErrGoalsNotFound
	// when the user never saved any.
	Get(ctx context.Context, username string) (Goals, error)

	// Upsert stores the goal targets for a user, replacing any previous set.
	Upsert(ctx context.Context, username string, goals Goals) error
}

// SnapshotCache is the short-TTL store consulted before re-aggregating.
// One process-wide freshness timestamp governs ALL entries collectively:
// Put resets it, Invalidate clears it, and Get misses for every key once the
// freshness window has elapsed. This is a deliberate simplification over
// per-key expiry.
type SnapshotCache interface {
	// Get returns the cached snapshot for (username, range) if the shared
	// freshness window is still open, or (nil, false) on a miss. A miss is
	// normal control flow, never an error.
	Get(ctx context.Context, username string, r TimeRange) (*ProgressSnapshot, bool)

	// Put stores a snapshot and resets the shared freshness timestamp.
	Put(ctx context.Context, username string, r TimeRange, snap *ProgressSnapshot)

	// Invalidate drops every entry at once. Called after goal updates so a
	// stale post-write read can never be served.
	Invalidate(ctx context.Context)
}

// MetricsSource fetches raw per-entry metric records from the upstream
// nutrition backend. Implementations degrade rather than fail: a non-2xx
// response or malformed body yields an empty list with a nil error, while a
// transport-level failure empties the whole bundle and reports the error so
// the caller can log it. Aggregation proceeds either way.
type MetricsSource interface {
	Fetch(ctx context.Context, username string, r DateRange) (BackendMetrics, error)

	// FetchCalories is the single-call path used by the lightweight
	// "remaining calories" feature. Unlike Fetch, its error is surfaced.
	FetchCalories(ctx context.Context, username string, r DateRange) ([]CalorieEntry, error)
}

// HealthDataSource is the capability interface over an on-device health
// platform (Health Connect, Google Fit, ...). When no platform is connected
// Read must not be called; Connected gates it. Implementations that are not
// wired to a real platform return EmptyHealthMetrics, and the aggregator's
// correctness does not depend on which implementation is installed.
type HealthDataSource interface {
	Connected(ctx context.Context) bool
	Read(ctx context.Context, username string, r DateRange) (HealthMetrics, error)
}
