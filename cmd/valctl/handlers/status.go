package handlers

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/valmesh/valctl/internal/state"
)

// ClusterStatus handles the cluster status command.
//
// It prints one line per node with its live state. A node the backend
// cannot answer for is reported on its own line without aborting the
// remaining nodes; such failures still make the command exit non-zero.
func ClusterStatus(ctx context.Context, names []string, management string) error {
	backend, err := parseBackendFlag(management)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := newEngine(newStore(), cfg)
	statuses, err := engine.Status(ctx, names, backend)
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for _, s := range statuses {
		if s.Err != nil {
			fmt.Fprintf(out, "%s error: %v\n", s.Name, s.Err)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", s.Name, s.Err))
			continue
		}
		lifecycle := state.Stopped
		if s.Running {
			lifecycle = state.Running
		}
		fmt.Fprintf(out, "%s %s\n", s.Name, lifecycle)
	}
	return errs.ErrorOrNil()
}
