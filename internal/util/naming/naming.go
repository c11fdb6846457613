package naming

import "fmt"

// NodePrefix is the fixed prefix shared by every validator node name.
const NodePrefix = "validator"

// ClusterLabel marks backend resources (containers, pidfiles) as owned by
// this tool, so drivers never touch unrelated resources.
const ClusterLabel = "valctl.cluster"

// Node returns the deterministic name for the validator at the given ordinal.
func Node(index int) string {
	return fmt.Sprintf("%s-%03d", NodePrefix, index)
}

// Network returns the name of the shared container network.
func Network() string {
	return NodePrefix + "-net"
}
