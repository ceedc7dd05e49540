// Package dot renders a built task graph as GraphViz DOT text: task
// nodes in one fill color, barrier nodes in another and drawn as boxes,
// with deterministic node and edge ordering so the output is a stable
// artifact suitable for golden-file comparison in tests.
package dot
