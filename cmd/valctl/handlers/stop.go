package handlers

import "context"

// ClusterStop handles the cluster stop command.
//
// With explicit names it stops exactly those nodes; with none it stops
// every node the backend currently knows about. Individual stop failures
// are collected and reported after all nodes had their chance.
func ClusterStop(ctx context.Context, names []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := newEngine(newStore(), cfg)
	_, err = engine.StopNodes(ctx, names)
	return err
}
