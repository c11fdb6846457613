package state

import (
	"fmt"

	"github.com/valmesh/valctl/internal/manage"
)

// Lifecycle is the coarse running state of the cluster or of one node.
type Lifecycle string

const (
	Running Lifecycle = "Running"
	Stopped Lifecycle = "Stopped"
)

// NodeRecord is the persisted bookkeeping for one node. Status is the
// last-known state, not live-verified; Index is the ordinal assigned at
// creation and is never reused within a running epoch.
type NodeRecord struct {
	Status Lifecycle `yaml:"Status"`
	Index  int       `yaml:"Index"`
}

// ClusterState is the single persisted aggregate. Field names match the
// on-disk document and must stay stable across versions.
type ClusterState struct {
	State  Lifecycle             `yaml:"State"`
	Manage manage.Backend        `yaml:"Manage"`
	Nodes  map[string]NodeRecord `yaml:"Nodes"`
}

// New returns the state of a cluster that has never run.
func New() *ClusterState {
	return &ClusterState{
		State: Stopped,
		Nodes: make(map[string]NodeRecord),
	}
}

// ResetNodes clears all node records; called when a fresh running epoch
// begins so entries from a fully-stopped cluster cannot leak into it.
func (s *ClusterState) ResetNodes() {
	s.Nodes = make(map[string]NodeRecord)
}

// RecordRunning marks a node Running at the given ordinal.
func (s *ClusterState) RecordRunning(name string, index int) {
	if s.Nodes == nil {
		s.Nodes = make(map[string]NodeRecord)
	}
	s.Nodes[name] = NodeRecord{Status: Running, Index: index}
}

// MarkAllStopped flips every node record to Stopped, keeping indices.
func (s *ClusterState) MarkAllStopped() {
	for name, rec := range s.Nodes {
		rec.Status = Stopped
		s.Nodes[name] = rec
	}
}

func (s *ClusterState) validate() error {
	switch s.State {
	case Running, Stopped:
	case "":
		// Documents written before the lifecycle flag existed.
		s.State = Stopped
	default:
		return fmt.Errorf("invalid lifecycle %q in state document", s.State)
	}

	if s.Manage == "" {
		// Older documents predate the Manage field; default rather
		// than fail so they stay readable.
		s.Manage = manage.DefaultBackend
	} else if _, err := manage.ParseBackend(string(s.Manage)); err != nil {
		return fmt.Errorf("state document: %w", err)
	}

	if s.Nodes == nil {
		s.Nodes = make(map[string]NodeRecord)
	}
	return nil
}
