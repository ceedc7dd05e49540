// Package config loads a frame's pass declarations from YAML and
// validates them with struct tags before they are turned into
// taskgraph.Pass values. The actual recording logic a pass performs is
// external to this system (see package taskgraph's Recorder contract);
// loading a config produces passes with no-op Execute callbacks that a
// caller is expected to replace before relying on the graph for
// anything beyond structure and synchronization analysis.
package config
