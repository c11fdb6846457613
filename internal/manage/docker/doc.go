// Package docker implements the container-runtime node backend. Nodes run
// as labelled containers on a shared bridge network; all operations go
// through the docker CLI, scoped by label so the driver never touches
// containers it does not own.
package docker
