// Package framepool builds several independent frames' task graphs
// concurrently. Spec section 5 allows different GPUTaskGraph instances
// to be built on different goroutines as long as no single instance is
// ever touched by more than one: Pool.BuildAll hands each frame
// configuration its own goroutine and its own graph, bounded by a
// configurable concurrency limit, mirroring the limited-fan-out pattern
// package config's grounding source uses for concurrent LLM calls.
package framepool
