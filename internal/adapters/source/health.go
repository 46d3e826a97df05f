package source

import (
	"context"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

var _ domain.HealthDataSource = (*DisconnectedHealthSource)(nil)

// DisconnectedHealthSource is the HealthDataSource installed when no native
// health platform bridge is wired in. It reports not-connected so the
// pipeline skips the read entirely, and honors the empty-result contract if
// Read is called anyway. Steps, sleep and heart-rate blocks then aggregate
// to their canonical empty forms.
type DisconnectedHealthSource struct{}

func NewDisconnectedHealthSource() *DisconnectedHealthSource {
	return &DisconnectedHealthSource{}
}

func (s *DisconnectedHealthSource) Connected(ctx context.Context) bool {
	return false
}

func (s *DisconnectedHealthSource) Read(ctx context.Context, username string, r domain.DateRange) (domain.HealthMetrics, error) {
	return domain.EmptyHealthMetrics(), nil
}
