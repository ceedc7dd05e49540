// Package taskgraph (module github.com/katalvlaran/taskgraph) builds and
// synchronizes per-frame GPU task graphs.
//
// A frame is described as a set of passes, each reading and writing
// virtual GPUResource values. Building a frame infers producer/consumer
// edges between passes, synthesizes the maximal set of pipeline barriers
// those edges require, then merges barriers that protect the same
// resource UID down to one per UID — detecting
// illegal concurrent writes along the way.
//
// Subpackages:
//
//	gapi/        — execution domains, pipeline stages, access flags, usage
//	resource/    — versioned virtual resource handles
//	graph/       — the generic node/edge engine and barrier synthesis
//	taskgraph/   — the GPU-specific graph, pass registration, and Build
//	passbuilder/ — a fluent, in-process alternative to YAML frame configs
//	config/      — YAML frame configuration and validation
//	framepool/   — bounded concurrent building of independent frames
//	dot/         — deterministic GraphViz rendering of a built graph
//	telemetry/   — structured logging, metrics, and frame correlation IDs
//	cmd/taskgraphctl/ — a CLI that loads a frame and reports its built graph
package taskgraph
