package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/taskgraph/config"
	"github.com/katalvlaran/taskgraph/dot"
	"github.com/katalvlaran/taskgraph/taskgraph"
	"github.com/katalvlaran/taskgraph/telemetry"
)

var format string

var buildCmd = &cobra.Command{
	Use:   "build <frame.yaml>",
	Short: "Load a frame configuration and build its task graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&format, "format", "dot", "output format: dot, json, or both")
}

type buildSummary struct {
	Domain    string `json:"domain"`
	FrameID   string `json:"frame_id"`
	NodeCount int    `json:"node_count"`
}

func runBuild(c *cobra.Command, args []string) error {
	level := logLevel
	if verbose {
		level = "debug"
	}
	log := telemetry.NewLogger("taskgraphctl", level)

	cfg, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("taskgraphctl: build: %w", err)
	}

	passes, err := cfg.ToPasses()
	if err != nil {
		return fmt.Errorf("taskgraphctl: build: %w", err)
	}

	g := taskgraph.New(cfg.ExecutionDomain(), taskgraph.WithLogger(log))
	for _, pass := range passes {
		if _, err := g.AddPass(pass); err != nil {
			return fmt.Errorf("taskgraphctl: build: pass %q: %w", pass.Name, err)
		}
	}

	if err := g.Build(); err != nil {
		return fmt.Errorf("taskgraphctl: build: %w", err)
	}

	log.Info("frame built", "frame_id", g.FrameID(), "nodes", g.NumNodes())

	switch format {
	case "dot":
		c.Println(dot.Render(g))
	case "json":
		return printSummary(c, cfg, g)
	case "both":
		c.Println(dot.Render(g))

		return printSummary(c, cfg, g)
	default:
		return fmt.Errorf("taskgraphctl: build: unknown --format %q", format)
	}

	return nil
}

func printSummary(c *cobra.Command, cfg *config.FrameConfig, g *taskgraph.GPUTaskGraph) error {
	enc, err := json.MarshalIndent(buildSummary{
		Domain:    cfg.Domain,
		FrameID:   g.FrameID(),
		NodeCount: g.NumNodes(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("taskgraphctl: build: %w", err)
	}
	c.Println(string(enc))

	return nil
}
