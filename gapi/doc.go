// Package gapi declares the low-level graphics-API vocabulary that the
// task graph schedules around: access masks, pipeline stages, the closed
// set of resource usages, and the execution-domain tag that marks which
// queue family a graph targets.
//
// None of this package talks to a real GAPI (Vulkan or otherwise) — it is
// the bitfield/enum boundary the core algorithm needs to reason about
// synchronization, matching spec section 3's "Resource Usage" table
// exactly. Concrete device/queue/command-buffer objects are external
// collaborators, specified only by the interfaces in package taskgraph.
package gapi
