package handlers

import (
	"context"

	"github.com/valmesh/valctl/internal/orchestration"
)

// ClusterStart handles the cluster start command.
//
// It reconciles the requested node count against the persisted cluster
// record and the backend's live view, starts whatever is missing, and
// persists the result.
func ClusterStart(ctx context.Context, count int, management string) error {
	backend, err := parseBackendFlag(management)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := newEngine(newStore(), cfg)
	_, err = engine.StartCluster(ctx, orchestration.StartRequest{
		Count:   count,
		Backend: backend,
	})
	return err
}
