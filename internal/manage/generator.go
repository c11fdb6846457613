package manage

import (
	"context"

	"github.com/hashicorp/go-multierror"
)

// Generator queues start and stop intents in issue order and flushes them
// through a driver as one batch. It lets the caller decide the full action
// set (and persist its bookkeeping) before any backend work happens.
type Generator struct {
	commands []command
}

type command struct {
	start *StartSpec // nil for a stop command
	stop  string
}

// Start queues a node start action.
func (g *Generator) Start(spec StartSpec) {
	g.commands = append(g.commands, command{start: &spec})
}

// Stop queues a node stop action.
func (g *Generator) Stop(name string) {
	g.commands = append(g.commands, command{stop: name})
}

// Pending returns the number of queued actions.
func (g *Generator) Pending() int {
	return len(g.commands)
}

// Flush executes the queued actions in order and empties the queue.
//
// A failed start aborts the flush: later nodes would try to join peers that
// never came up. A failed stop does not; stops fan out best-effort and the
// failures are collected so every reachable node still gets its stop action.
func (g *Generator) Flush(ctx context.Context, driver Driver) error {
	commands := g.commands
	g.commands = nil

	var stopErrs *multierror.Error
	for _, c := range commands {
		if c.start != nil {
			if err := driver.StartNode(ctx, *c.start); err != nil {
				return err
			}
			continue
		}
		if err := driver.StopNode(ctx, c.stop); err != nil {
			stopErrs = multierror.Append(stopErrs, err)
		}
	}
	return stopErrs.ErrorOrNil()
}
