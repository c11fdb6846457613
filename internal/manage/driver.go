package manage

import (
	"context"
	"fmt"
)

// StartSpec describes one node start action. Ports are identical for every
// node of a cluster; isolation between nodes comes from the backend, not
// from port assignment.
type StartSpec struct {
	Name        string
	ServicePort int
	GossipPort  int
	Genesis     bool
}

// Driver is the capability interface a node-management backend implements.
// Implementations must make StopNode a no-op for nodes that are already
// stopped or unknown, so the caller can issue stops unconditionally.
type Driver interface {
	// NodeNames returns the names of all nodes the backend currently
	// knows about, running or not.
	NodeNames(ctx context.Context) ([]string, error)

	// IsRunning reports whether the named node is currently running.
	IsRunning(ctx context.Context, name string) (bool, error)

	// StartNode launches a node according to the spec.
	StartNode(ctx context.Context, spec StartSpec) error

	// StopNode stops the named node. Unknown or stopped nodes are a no-op.
	StopNode(ctx context.Context, name string) error

	// Settle reconciles cross-node wiring (peer discovery, shared
	// networking) after a batch of start or stop actions.
	Settle(ctx context.Context) error
}

// DriverError wraps a backend failure so callers can tell driver faults
// apart from policy errors.
type DriverError struct {
	Backend Backend
	Op      string
	Err     error
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("%s driver: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *DriverError) Unwrap() error {
	return e.Err
}

// WrapDriverError annotates a backend failure; nil stays nil.
func WrapDriverError(backend Backend, op string, err error) error {
	if err == nil {
		return nil
	}
	return &DriverError{Backend: backend, Op: op, Err: err}
}
