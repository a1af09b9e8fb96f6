package plangen

import (
	"context"

	"studentfit/fitness-planner/internal/domain"
)

// Generator produces exactly one (workout, meal) plan for a fully
// populated profile, synchronously. Any failure (network, HTTP status,
// malformed response) is returned as a single error; no partial plan is
// ever returned, and callers get no retry or caching behavior here.
type Generator interface {
	Generate(ctx context.Context, profile domain.Profile) (*domain.Plan, error)
}
