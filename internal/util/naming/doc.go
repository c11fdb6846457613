// Package naming provides consistent naming functions for cluster resources.
//
// Validator nodes are named {prefix}-{index} with a zero-padded three digit
// ordinal, so names sort in creation order and the genesis node is always
// the lexicographically first one.
package naming
