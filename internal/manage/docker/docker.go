package docker

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/valmesh/valctl/internal/config"
	"github.com/valmesh/valctl/internal/manage"
	"github.com/valmesh/valctl/internal/util/naming"
	"github.com/valmesh/valctl/internal/util/retry"
)

const backend = manage.BackendDocker

// Driver manages validator nodes as docker containers.
type Driver struct {
	image string

	// run executes a docker CLI invocation; replaced in tests.
	run func(ctx context.Context, args ...string) (string, error)
}

var _ manage.Driver = (*Driver)(nil)

// New returns a docker-backed driver using the configured node image.
func New(cfg *config.Config) *Driver {
	return &Driver{
		image: cfg.Image,
		run:   runDocker,
	}
}

func runDocker(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "docker", args...)
	output, err := cmd.CombinedOutput()
	out := strings.TrimSpace(string(output))
	if err != nil {
		if out != "" {
			return out, fmt.Errorf("docker %s: %w: %s", args[0], err, out)
		}
		return out, fmt.Errorf("docker %s: %w", args[0], err)
	}
	return out, nil
}

// NodeNames lists all containers carrying the cluster label, running or not.
func (d *Driver) NodeNames(ctx context.Context) ([]string, error) {
	out, err := d.run(ctx, "ps", "--all",
		"--filter", "label="+naming.ClusterLabel,
		"--format", "{{.Names}}")
	if err != nil {
		return nil, manage.WrapDriverError(backend, "list nodes", err)
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// IsRunning inspects the container state; an unknown container is simply
// not running, not an error.
func (d *Driver) IsRunning(ctx context.Context, name string) (bool, error) {
	out, err := d.run(ctx, "inspect", "--format", "{{.State.Running}}", name)
	if err != nil {
		if isNotFound(out) || isNotFound(err.Error()) {
			return false, nil
		}
		return false, manage.WrapDriverError(backend, "inspect "+name, err)
	}
	running, err := strconv.ParseBool(out)
	if err != nil {
		return false, manage.WrapDriverError(backend, "inspect "+name,
			fmt.Errorf("unexpected inspect output %q", out))
	}
	return running, nil
}

// StartNode launches the node container. A leftover stopped container with
// the same name is removed first so the start is re-runnable.
func (d *Driver) StartNode(ctx context.Context, spec manage.StartSpec) error {
	_, _ = d.run(ctx, "rm", "--force", spec.Name)

	op := func() error {
		_, err := d.run(ctx, startArgs(d.image, spec)...)
		if err != nil && !isBusy(err.Error()) {
			return retry.Fatal(err)
		}
		return err
	}
	if err := retry.Do(ctx, op); err != nil {
		return manage.WrapDriverError(backend, "start "+spec.Name, err)
	}
	return nil
}

// startArgs builds the docker run invocation for one node.
func startArgs(image string, spec manage.StartSpec) []string {
	return []string{
		"run", "--detach",
		"--name", spec.Name,
		"--label", naming.ClusterLabel,
		"--network", naming.Network(),
		"--env", "VALIDATOR_NAME=" + spec.Name,
		"--env", fmt.Sprintf("VALIDATOR_SERVICE_PORT=%d", spec.ServicePort),
		"--env", fmt.Sprintf("VALIDATOR_GOSSIP_PORT=%d", spec.GossipPort),
		"--env", fmt.Sprintf("VALIDATOR_GENESIS=%t", spec.Genesis),
		image,
	}
}

// StopNode removes the container; an already-absent container is a no-op.
func (d *Driver) StopNode(ctx context.Context, name string) error {
	out, err := d.run(ctx, "rm", "--force", name)
	if err != nil {
		if isNotFound(out) || isNotFound(err.Error()) {
			return nil
		}
		return manage.WrapDriverError(backend, "stop "+name, err)
	}
	return nil
}

// Settle ensures the shared bridge network exists so nodes started in this
// batch can discover each other.
func (d *Driver) Settle(ctx context.Context) error {
	if _, err := d.run(ctx, "network", "inspect", naming.Network()); err == nil {
		return nil
	}
	if _, err := d.run(ctx, "network", "create", naming.Network()); err != nil {
		// A concurrent create is fine; anything else is a real fault.
		if !strings.Contains(err.Error(), "already exists") {
			return manage.WrapDriverError(backend, "create network", err)
		}
	}
	return nil
}

// isNotFound matches the docker CLI's missing-object messages.
func isNotFound(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "no such object") ||
		strings.Contains(s, "no such container") ||
		strings.Contains(s, "not found")
}

// isBusy matches errors worth a retry: the daemon is holding a lock on the
// name or image rather than rejecting the request.
func isBusy(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "is already in use") ||
		strings.Contains(s, "locked") ||
		strings.Contains(s, "conflict") ||
		strings.Contains(s, "is busy")
}
