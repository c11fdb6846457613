// Package daemon implements the process node backend. Each validator runs
// as a detached host process; the driver's only bookkeeping is a pidfile
// per node under the user's state directory, and liveness is checked
// directly against the kernel rather than trusted from the files.
package daemon
