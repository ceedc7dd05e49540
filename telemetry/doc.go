// Package telemetry is the ambient observability layer shared by
// packages taskgraph and framepool and the taskgraphctl CLI: structured logging via
// hashicorp/go-hclog, Prometheus counters and a histogram for build
// activity, and per-build correlation IDs via google/uuid.
//
// Nothing in this package gates control flow — a nil Metrics or Logger
// is never required for correctness, only for visibility into what a
// build did.
package telemetry
