// Package resource implements the virtual resource identity and
// association algebra that the task graph uses to decide whether one
// pass's output satisfies another pass's input.
//
// A Resource is identified solely by a UID string. Versioning is encoded
// by appending a single sentinel character ('+') to the UID for each
// "upgrade" of the resource. The original (v0) form has no trailing
// sentinel. Two resources are "associated" iff one's UID is a prefix of
// the other's; among associated resources, fewer sentinels means older.
//
// Complexity: every operation here is O(len(uid)).
package resource
