package execution

import (
	"context"

	"checker/internal/domain"
)

// Executor runs every test group of a configuration
type Executor interface {
	RunAll(ctx context.Context, cfg *domain.Configuration) ([]domain.GroupResult, error)
}
