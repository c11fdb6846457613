// Package orchestration contains the reconciliation engine: the policy that
// merges the desired node count against the persisted cluster record and
// the backend's live view, and turns the difference into start and stop
// actions.
//
// The engine is run-to-completion per command. Idempotence, not rollback,
// is the recovery mechanism: a killed invocation leaves whatever the last
// save recorded, and re-running the command converges because nodes that
// already run are skipped and stops of stopped nodes are no-ops.
//
// The engine is idempotent - it can be run multiple times and will only
// issue the actions necessary to reach the desired state.
package orchestration
