// Package state models the persisted cluster record: the coarse lifecycle,
// the sticky management backend, and the node bookkeeping (status and
// ordinal per node). The record is a plain YAML document under the user's
// state directory, loaded at command start and saved at command end; it is
// never ambient global state.
package state
