package docker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valmesh/valctl/internal/config"
	"github.com/valmesh/valctl/internal/manage"
)

// fakeRunner records docker invocations and replays canned responses keyed
// by the docker subcommand.
type fakeRunner struct {
	calls   [][]string
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) run(_ context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	key := args[0]
	if key == "network" {
		key = "network " + args[1]
	}
	return f.outputs[key], f.errs[key]
}

func newDriver(f *fakeRunner) *Driver {
	d := New(config.Default())
	d.run = f.run
	return d
}

func TestNodeNames(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{outputs: map[string]string{"ps": "validator-000\nvalidator-001"}}
	names, err := newDriver(f).NodeNames(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"validator-000", "validator-001"}, names)

	require.Len(t, f.calls, 1)
	require.Contains(t, f.calls[0], "label=valctl.cluster")
}

func TestNodeNamesEmpty(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{outputs: map[string]string{"ps": ""}}
	names, err := newDriver(f).NodeNames(context.Background())
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestNodeNamesError(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{errs: map[string]error{"ps": errors.New("cannot connect to the docker daemon")}}
	_, err := newDriver(f).NodeNames(context.Background())

	var driverErr *manage.DriverError
	require.ErrorAs(t, err, &driverErr)
	require.Equal(t, manage.BackendDocker, driverErr.Backend)
}

func TestIsRunning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		output  string
		err     error
		want    bool
		wantErr bool
	}{
		{name: "running", output: "true", want: true},
		{name: "stopped", output: "false", want: false},
		{name: "unknown container", err: errors.New("Error: No such object: validator-009")},
		{name: "daemon down", err: errors.New("cannot connect"), wantErr: true},
		{name: "garbage output", output: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeRunner{
				outputs: map[string]string{"inspect": tt.output},
				errs:    map[string]error{"inspect": tt.err},
			}
			got, err := newDriver(f).IsRunning(context.Background(), "validator-000")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStartNodeArgs(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{}
	d := newDriver(f)

	spec := manage.StartSpec{Name: "validator-000", ServicePort: 8800, GossipPort: 5500, Genesis: true}
	require.NoError(t, d.StartNode(context.Background(), spec))

	// First a defensive rm of any stale container, then the run.
	require.Len(t, f.calls, 2)
	require.Equal(t, "rm", f.calls[0][0])

	joined := strings.Join(f.calls[1], " ")
	require.Contains(t, joined, "run --detach --name validator-000")
	require.Contains(t, joined, "--network validator-net")
	require.Contains(t, joined, "VALIDATOR_GENESIS=true")
	require.Contains(t, joined, "VALIDATOR_SERVICE_PORT=8800")
	require.Contains(t, joined, "VALIDATOR_GOSSIP_PORT=5500")
	require.Contains(t, joined, config.DefaultImage)
}

func TestStartNodeFatalError(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{errs: map[string]error{"run": errors.New("invalid reference format")}}
	err := newDriver(f).StartNode(context.Background(), manage.StartSpec{Name: "validator-000"})
	require.Error(t, err)

	// Non-busy errors must not be retried: one rm plus one run.
	require.Len(t, f.calls, 2)
}

func TestStopNodeAbsentIsNoop(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{errs: map[string]error{"rm": fmt.Errorf("Error: No such container: validator-004")}}
	require.NoError(t, newDriver(f).StopNode(context.Background(), "validator-004"))
}

func TestStopNodeError(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{errs: map[string]error{"rm": errors.New("cannot connect")}}
	require.Error(t, newDriver(f).StopNode(context.Background(), "validator-004"))
}

func TestSettleCreatesMissingNetwork(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{errs: map[string]error{"network inspect": errors.New("no such network")}}
	require.NoError(t, newDriver(f).Settle(context.Background()))

	require.Len(t, f.calls, 2)
	require.Equal(t, []string{"network", "create", "validator-net"}, f.calls[1])
}

func TestSettleExistingNetwork(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{}
	require.NoError(t, newDriver(f).Settle(context.Background()))
	require.Len(t, f.calls, 1)
}
