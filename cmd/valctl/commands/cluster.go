package commands

import (
	"github.com/spf13/cobra"

	"github.com/valmesh/valctl/cmd/valctl/handlers"
)

// Cluster returns the cluster command group.
func Cluster() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Start, stop, and inspect the validator cluster",
	}

	cmd.AddCommand(clusterStart())
	cmd.AddCommand(clusterStop())
	cmd.AddCommand(clusterStatus())

	return cmd
}

func clusterStart() *cobra.Command {
	var (
		count      int
		management string
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a cluster of validator nodes",
		Long: `Start brings the cluster up to the requested node count.

The first node (validator-000) bootstraps the network as the genesis node;
later nodes join it. Nodes that are already running are left alone, so the
command can be re-run safely, and a larger count only adds the missing
nodes.

A cluster is locked to the management backend it started with. To switch
between docker and daemon, stop the cluster first.

Example:
  valctl cluster start --count 5 --manage docker`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ClusterStart(cmd.Context(), count, management)
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "number of nodes to start")
	cmd.Flags().StringVarP(&management, "manage", "m", "", "style of validator management (daemon|docker)")

	return cmd
}

func clusterStop() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop [NODE_NAME...]",
		Short: "Stop specific nodes, or the whole cluster",
		Long: `Stop tears down the named nodes, or every node the backend knows
about when no names are given. Stopping an already-stopped node is a
harmless no-op; one node failing to stop does not keep the others from
being stopped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.ClusterStop(cmd.Context(), args)
		},
	}

	return cmd
}

func clusterStatus() *cobra.Command {
	var management string

	cmd := &cobra.Command{
		Use:   "status [NODE_NAME...]",
		Short: "Report live status of nodes",
		Long: `Status queries the backend for the live state of the named nodes,
or of every known node when no names are given. It never modifies the
persisted cluster record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.ClusterStatus(cmd.Context(), args, management)
		},
	}

	cmd.Flags().StringVarP(&management, "manage", "m", "", "style of validator management (daemon|docker)")

	return cmd
}
