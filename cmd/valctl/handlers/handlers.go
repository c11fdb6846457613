// Package handlers implements command execution for the valctl CLI.
//
// Collaborators are constructed through package-level factory variables so
// tests can substitute mocks without touching the real state file or a
// node backend.
package handlers

import (
	"io"
	"os"

	"github.com/valmesh/valctl/internal/config"
	"github.com/valmesh/valctl/internal/manage"
	"github.com/valmesh/valctl/internal/manage/drivers"
	"github.com/valmesh/valctl/internal/orchestration"
	"github.com/valmesh/valctl/internal/state"
)

// Factory function variables - can be replaced in tests.
var (
	// loadConfig loads the tool configuration.
	loadConfig = config.Load

	// newStore opens the per-user cluster state store.
	newStore = func() *state.Store {
		return state.NewStore(state.DefaultPath())
	}

	// newEngine wires a reconciliation engine against the real driver
	// registry.
	newEngine = func(store *state.Store, cfg *config.Config) *orchestration.Engine {
		open := func(backend manage.Backend) (manage.Driver, error) {
			return drivers.Open(backend, cfg)
		}
		return orchestration.NewEngine(store, cfg, orchestration.NewConsoleReporter(out), open)
	}

	// out receives command output.
	out io.Writer = os.Stdout
)

// parseBackendFlag turns the --manage flag into a backend; empty input
// means "no preference" and is rejected before any driver interaction
// otherwise.
func parseBackendFlag(value string) (manage.Backend, error) {
	if value == "" {
		return "", nil
	}
	return manage.ParseBackend(value)
}
