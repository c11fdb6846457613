package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIsStoppedAndEmpty(t *testing.T) {
	t.Parallel()

	st := New()
	require.Equal(t, Stopped, st.State)
	require.NotNil(t, st.Nodes)
	require.Empty(t, st.Nodes)
}

func TestResetNodes(t *testing.T) {
	t.Parallel()

	st := New()
	st.RecordRunning("validator-000", 0)
	st.RecordRunning("validator-001", 1)

	st.ResetNodes()
	require.Empty(t, st.Nodes)
}

func TestMarkAllStopped(t *testing.T) {
	t.Parallel()

	st := New()
	st.RecordRunning("validator-000", 0)
	st.RecordRunning("validator-003", 3)

	st.MarkAllStopped()
	require.Equal(t, NodeRecord{Status: Stopped, Index: 0}, st.Nodes["validator-000"])
	require.Equal(t, NodeRecord{Status: Stopped, Index: 3}, st.Nodes["validator-003"])
}

func TestRecordRunningOnNilMap(t *testing.T) {
	t.Parallel()

	st := &ClusterState{}
	st.RecordRunning("validator-000", 0)
	require.Equal(t, NodeRecord{Status: Running, Index: 0}, st.Nodes["validator-000"])
}
