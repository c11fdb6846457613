package orchestration

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/valmesh/valctl/internal/config"
	"github.com/valmesh/valctl/internal/manage"
	"github.com/valmesh/valctl/internal/state"
	"github.com/valmesh/valctl/internal/util/naming"
)

// OpenDriver constructs the driver for a backend. The engine holds a
// function instead of the concrete registry so tests can hand it a mock.
type OpenDriver func(backend manage.Backend) (manage.Driver, error)

// Engine merges desired state against persisted and observed state and
// drives the resulting actions through a backend driver.
type Engine struct {
	store    *state.Store
	cfg      *config.Config
	reporter Reporter
	open     OpenDriver
}

// NewEngine wires the engine's collaborators.
func NewEngine(store *state.Store, cfg *config.Config, reporter Reporter, open OpenDriver) *Engine {
	return &Engine{
		store:    store,
		cfg:      cfg,
		reporter: reporter,
		open:     open,
	}
}

// StartRequest is the desired state for one start invocation. An empty
// Backend means "accept whatever the cluster already uses".
type StartRequest struct {
	Count   int
	Backend manage.Backend
}

// StartResult lists what the invocation actually did.
type StartResult struct {
	Backend manage.Backend
	Started []string
	Skipped []string
}

// StartCluster brings the cluster to the requested node count.
//
// The node at ordinal 0 is the genesis node and is always issued first;
// nodes the backend already reports running are skipped, so repeating the
// command is safe and growing the count only adds the missing ordinals.
// State is persisted before the queued starts are flushed: if the flush
// fails the document may call nodes Running that never came up, and the
// next invocation corrects that against the backend's live view.
func (e *Engine) StartCluster(ctx context.Context, req StartRequest) (*StartResult, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", req.Count)
	}

	st, err := e.store.Load()
	if err != nil {
		if !errors.Is(err, state.ErrNoState) {
			return nil, err
		}
		st = state.New()
	}

	// A cluster that was fully stopped begins a fresh epoch; records from
	// the previous one must not leak into it.
	if st.State == state.Stopped {
		st.ResetNodes()
	}

	if st.Manage == "" {
		st.Manage = req.Backend
		if st.Manage == "" {
			st.Manage = manage.DefaultBackend
		}
	} else if req.Backend != "" && req.Backend != st.Manage {
		if st.State == state.Running {
			return nil, &ConflictError{Recorded: st.Manage, Requested: req.Backend}
		}
		// A fully stopped cluster may switch backends for its next epoch.
		st.Manage = req.Backend
	}

	st.State = state.Running

	driver, err := e.open(st.Manage)
	if err != nil {
		return nil, err
	}

	// Live reconciliation source: what the backend actually knows about,
	// independent of the persisted record.
	existing, err := driver.NodeNames(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	var gen manage.Generator
	result := &StartResult{Backend: st.Manage}

	for i := 0; i < req.Count; i++ {
		name := naming.Node(i)

		if known[name] {
			running, err := driver.IsRunning(ctx, name)
			if err != nil {
				return nil, err
			}
			if running {
				e.reporter.Printf("Already running: %s", name)
				st.RecordRunning(name, i)
				result.Skipped = append(result.Skipped, name)
				continue
			}
		}

		e.reporter.Printf("Starting: %s", name)
		gen.Start(manage.StartSpec{
			Name:        name,
			ServicePort: e.cfg.ServicePort,
			GossipPort:  e.cfg.GossipPort,
			Genesis:     i == 0,
		})
		st.RecordRunning(name, i)
		result.Started = append(result.Started, name)
	}

	if err := e.store.Save(st); err != nil {
		return nil, err
	}

	if err := gen.Flush(ctx, driver); err != nil {
		return nil, err
	}
	if err := driver.Settle(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// StopNodes stops the named nodes, or every node the backend knows about
// when no names are given. Stops fan out best-effort: one failing node does
// not keep the others from their stop action, and the final state is
// persisted either way. A full stop (no explicit names) closes the epoch by
// marking the cluster Stopped.
func (e *Engine) StopNodes(ctx context.Context, names []string) ([]string, error) {
	st, err := e.store.Load()
	if err != nil {
		if errors.Is(err, state.ErrNoState) {
			return nil, fmt.Errorf("nothing to stop: %w", err)
		}
		return nil, err
	}

	driver, err := e.open(st.Manage)
	if err != nil {
		return nil, err
	}

	targets := names
	wholeCluster := len(targets) == 0
	if wholeCluster {
		// The persisted record may be stale; the backend's live view is
		// what actually needs stopping.
		if targets, err = driver.NodeNames(ctx); err != nil {
			return nil, err
		}
	}

	var gen manage.Generator
	for _, name := range targets {
		e.reporter.Printf("Stopping: %s", name)
		gen.Stop(name)
	}

	var errs *multierror.Error
	errs = multierror.Append(errs, gen.Flush(ctx, driver))
	errs = multierror.Append(errs, driver.Settle(ctx))

	if wholeCluster {
		st.State = state.Stopped
		st.MarkAllStopped()
	} else {
		for _, name := range targets {
			if rec, ok := st.Nodes[name]; ok {
				rec.Status = state.Stopped
				st.Nodes[name] = rec
			}
		}
	}

	if err := e.store.Save(st); err != nil {
		errs = multierror.Append(errs, err)
	}
	return targets, errs.ErrorOrNil()
}

// NodeStatus is the live status of one node. Err is set when the backend
// could not answer for that node; other nodes are unaffected.
type NodeStatus struct {
	Name    string
	Running bool
	Err     error
}

// Status reports live per-node status without touching persisted state.
// The backend hint wins when given; otherwise the persisted backend is
// used, or the default for a machine with no recorded cluster.
func (e *Engine) Status(ctx context.Context, names []string, hint manage.Backend) ([]NodeStatus, error) {
	backend := hint
	if backend == "" {
		backend = manage.DefaultBackend
		if st, err := e.store.Load(); err == nil {
			backend = st.Manage
		}
	}

	driver, err := e.open(backend)
	if err != nil {
		return nil, err
	}

	targets := names
	if len(targets) == 0 {
		if targets, err = driver.NodeNames(ctx); err != nil {
			return nil, err
		}
	}

	statuses := make([]NodeStatus, 0, len(targets))
	for _, name := range targets {
		running, err := driver.IsRunning(ctx, name)
		statuses = append(statuses, NodeStatus{Name: name, Running: running, Err: err})
	}
	return statuses, nil
}
