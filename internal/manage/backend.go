package manage

import "fmt"

// Backend identifies a node-management backend.
type Backend string

const (
	// BackendDocker manages nodes as labelled containers.
	BackendDocker Backend = "docker"
	// BackendDaemon manages nodes as host daemon processes.
	BackendDaemon Backend = "daemon"
)

// DefaultBackend is used for a brand-new cluster when the operator did not
// request one.
const DefaultBackend = BackendDocker

// ParseBackend validates a management-type string from user input or a
// persisted document.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendDocker:
		return BackendDocker, nil
	case BackendDaemon:
		return BackendDaemon, nil
	default:
		return "", fmt.Errorf("invalid management type: %q (expected %q or %q)",
			s, BackendDocker, BackendDaemon)
	}
}

func (b Backend) String() string {
	return string(b)
}
