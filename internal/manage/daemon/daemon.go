package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/adrg/xdg"

	"github.com/valmesh/valctl/internal/config"
	"github.com/valmesh/valctl/internal/manage"
)

const backend = manage.BackendDaemon

// Driver manages validator nodes as detached host processes, one pidfile
// per node.
type Driver struct {
	binary string
	runDir string

	// startCommand builds the process invocation; replaced in tests.
	startCommand func(ctx context.Context, binary string, spec manage.StartSpec) *exec.Cmd
}

var _ manage.Driver = (*Driver)(nil)

// New returns a daemon-backed driver using the configured validator binary
// and the default per-user run directory.
func New(cfg *config.Config) *Driver {
	return NewAt(cfg, filepath.Join(xdg.StateHome, "valctl", "run"))
}

// NewAt is New with an explicit run directory.
func NewAt(cfg *config.Config, runDir string) *Driver {
	return &Driver{
		binary:       cfg.DaemonBinary,
		runDir:       runDir,
		startCommand: validatorCommand,
	}
}

func validatorCommand(ctx context.Context, binary string, spec manage.StartSpec) *exec.Cmd {
	args := []string{
		"--name", spec.Name,
		"--service-port", strconv.Itoa(spec.ServicePort),
		"--gossip-port", strconv.Itoa(spec.GossipPort),
	}
	if spec.Genesis {
		args = append(args, "--genesis")
	}
	return exec.CommandContext(ctx, binary, args...)
}

// NodeNames returns one name per pidfile, whether or not the process is
// still alive; dead entries are cleaned up by Settle.
func (d *Driver) NodeNames(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.runDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, manage.WrapDriverError(backend, "list nodes", err)
	}

	var names []string
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".pid"); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// IsRunning reports whether the recorded process is still alive.
func (d *Driver) IsRunning(_ context.Context, name string) (bool, error) {
	pid, err := d.readPid(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, manage.WrapDriverError(backend, "inspect "+name, err)
	}
	return pidAlive(pid), nil
}

// StartNode launches the validator binary detached from this process and
// records its pid.
func (d *Driver) StartNode(ctx context.Context, spec manage.StartSpec) error {
	if err := os.MkdirAll(d.runDir, 0o755); err != nil {
		return manage.WrapDriverError(backend, "start "+spec.Name, err)
	}

	cmd := d.startCommand(ctx, d.binary, spec)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return manage.WrapDriverError(backend, "start "+spec.Name, err)
	}

	pid := cmd.Process.Pid
	if err := os.WriteFile(d.pidPath(spec.Name), []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return manage.WrapDriverError(backend, "start "+spec.Name,
			fmt.Errorf("record pid %d: %w", pid, err))
	}

	// The node outlives this invocation; drop our handle on it.
	return manage.WrapDriverError(backend, "start "+spec.Name, cmd.Process.Release())
}

// StopNode terminates the recorded process and removes its pidfile. A node
// without a pidfile, or whose process already exited, is a no-op.
func (d *Driver) StopNode(_ context.Context, name string) error {
	pid, err := d.readPid(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return manage.WrapDriverError(backend, "stop "+name, err)
	}

	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil && !errors.Is(err, syscall.ESRCH) {
		return manage.WrapDriverError(backend, "stop "+name, err)
	}
	if err := os.Remove(d.pidPath(name)); err != nil && !os.IsNotExist(err) {
		return manage.WrapDriverError(backend, "stop "+name, err)
	}
	return nil
}

// Settle reaps pidfiles whose process is gone so the next NodeNames call
// reflects reality.
func (d *Driver) Settle(ctx context.Context) error {
	names, err := d.NodeNames(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		pid, err := d.readPid(name)
		if err != nil {
			continue
		}
		if !pidAlive(pid) {
			if err := os.Remove(d.pidPath(name)); err != nil && !os.IsNotExist(err) {
				return manage.WrapDriverError(backend, "reap "+name, err)
			}
		}
	}
	return nil
}

func (d *Driver) pidPath(name string) string {
	return filepath.Join(d.runDir, name+".pid")
}

func (d *Driver) readPid(name string) (int, error) {
	data, err := os.ReadFile(d.pidPath(name))
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("malformed pidfile for %s: %w", name, err)
	}
	return pid, nil
}

// pidAlive checks process existence with a null signal.
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || errors.Is(err, syscall.EPERM)
}
