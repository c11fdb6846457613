package manage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Backend
		wantErr bool
	}{
		{input: "docker", want: BackendDocker},
		{input: "daemon", want: BackendDaemon},
		{input: "", wantErr: true},
		{input: "compose", wantErr: true},
		{input: "Docker", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBackend(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratorFlushOrder(t *testing.T) {
	t.Parallel()

	var gen Generator
	gen.Start(StartSpec{Name: "validator-000", Genesis: true})
	gen.Start(StartSpec{Name: "validator-001"})
	require.Equal(t, 2, gen.Pending())

	driver := &MockDriver{}
	require.NoError(t, gen.Flush(context.Background(), driver))
	require.Equal(t, 0, gen.Pending())

	require.Len(t, driver.Started, 2)
	require.Equal(t, "validator-000", driver.Started[0].Name)
	require.True(t, driver.Started[0].Genesis)
	require.Equal(t, "validator-001", driver.Started[1].Name)
	require.False(t, driver.Started[1].Genesis)
}

func TestGeneratorFlushStartAborts(t *testing.T) {
	t.Parallel()

	var gen Generator
	gen.Start(StartSpec{Name: "validator-000"})
	gen.Start(StartSpec{Name: "validator-001"})

	boom := errors.New("backend down")
	driver := &MockDriver{
		StartNodeFunc: func(_ context.Context, spec StartSpec) error {
			if spec.Name == "validator-000" {
				return boom
			}
			return nil
		},
	}

	err := gen.Flush(context.Background(), driver)
	require.ErrorIs(t, err, boom)
	// The failed start stops the batch before the second node.
	require.Len(t, driver.Started, 1)
}

func TestGeneratorFlushStopFansOut(t *testing.T) {
	t.Parallel()

	var gen Generator
	gen.Stop("validator-000")
	gen.Stop("validator-001")
	gen.Stop("validator-002")

	boom := errors.New("cannot stop")
	driver := &MockDriver{
		StopNodeFunc: func(_ context.Context, name string) error {
			if name == "validator-001" {
				return boom
			}
			return nil
		},
	}

	err := gen.Flush(context.Background(), driver)
	require.ErrorIs(t, err, boom)
	// The middle failure must not keep the last node from its stop action.
	require.Equal(t, []string{"validator-000", "validator-001", "validator-002"}, driver.Stopped)
}

func TestWrapDriverError(t *testing.T) {
	t.Parallel()

	require.NoError(t, WrapDriverError(BackendDocker, "list", nil))

	inner := errors.New("daemon unreachable")
	err := WrapDriverError(BackendDocker, "list nodes", inner)
	require.ErrorIs(t, err, inner)

	var driverErr *DriverError
	require.ErrorAs(t, err, &driverErr)
	require.Equal(t, BackendDocker, driverErr.Backend)
	require.Contains(t, err.Error(), "docker driver")
}
