package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/taskgraph/config"
	"github.com/katalvlaran/taskgraph/graph"
	"github.com/katalvlaran/taskgraph/taskgraph"
	"github.com/katalvlaran/taskgraph/telemetry"
)

var reachableCmd = &cobra.Command{
	Use:   "reachable <frame.yaml> <node-id>",
	Short: "List every node downstream of a given node once the frame is built",
	Args:  cobra.ExactArgs(2),
	RunE:  runReachable,
}

func init() {
	rootCmd.AddCommand(reachableCmd)
}

func runReachable(c *cobra.Command, args []string) error {
	level := logLevel
	if verbose {
		level = "debug"
	}
	log := telemetry.NewLogger("taskgraphctl", level)

	cfg, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("taskgraphctl: reachable: %w", err)
	}

	passes, err := cfg.ToPasses()
	if err != nil {
		return fmt.Errorf("taskgraphctl: reachable: %w", err)
	}

	g := taskgraph.New(cfg.ExecutionDomain(), taskgraph.WithLogger(log))
	for _, pass := range passes {
		if _, err := g.AddPass(pass); err != nil {
			return fmt.Errorf("taskgraphctl: reachable: pass %q: %w", pass.Name, err)
		}
	}
	if err := g.Build(); err != nil {
		return fmt.Errorf("taskgraphctl: reachable: %w", err)
	}

	log.Info("querying downstream nodes", "frame_id", g.FrameID(), "from", args[1])

	res, err := graph.Reachable(g.TaskGraph(), graph.NodeID(args[1]))
	if err != nil {
		return fmt.Errorf("taskgraphctl: reachable: %w", err)
	}

	enc, err := json.MarshalIndent(res.Order, "", "  ")
	if err != nil {
		return fmt.Errorf("taskgraphctl: reachable: %w", err)
	}
	c.Println(string(enc))

	return nil
}
