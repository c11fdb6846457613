// Package drivers wires backend kinds to their Driver implementations.
// It exists so command code selects a backend by value through one lookup
// instead of branching on management-type strings.
package drivers

import (
	"fmt"

	"github.com/valmesh/valctl/internal/config"
	"github.com/valmesh/valctl/internal/manage"
	"github.com/valmesh/valctl/internal/manage/daemon"
	"github.com/valmesh/valctl/internal/manage/docker"
)

var registry = map[manage.Backend]func(*config.Config) manage.Driver{
	manage.BackendDocker: func(cfg *config.Config) manage.Driver { return docker.New(cfg) },
	manage.BackendDaemon: func(cfg *config.Config) manage.Driver { return daemon.New(cfg) },
}

// Open returns the driver for the given backend.
func Open(backend manage.Backend, cfg *config.Config) (manage.Driver, error) {
	construct, ok := registry[backend]
	if !ok {
		return nil, fmt.Errorf("invalid management type: %q", backend)
	}
	return construct(cfg), nil
}
