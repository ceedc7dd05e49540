// Package passbuilder provides a fluent, in-process alternative to
// config.FrameConfig for constructing taskgraph.Pass values directly from
// Go code, without going through YAML.
//
// Options and New validate and panic on meaningless inputs (nil
// functions, empty identifiers); Build itself never panics and reports
// a missing Execute as the sentinel error ErrMissingExecute.
package passbuilder
