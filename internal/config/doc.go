// Package config holds the tool configuration: which image or binary runs a
// validator node and the fixed network ports every node listens on.
//
// Configuration is read from an optional YAML file in the user's config
// directory; absent file or absent fields fall back to defaults. Ports are
// identical for every node in a cluster because each node runs in its own
// namespace (container or host process tree).
package config
