// Package labels builds an issue-tracker label set from JSON source fragments.
//
// A run loads a mandatory core source and, when asked, an optional scope
// source. Sources are folded in load order into a MergedSet keyed by label
// name: a later record with the same name replaces the earlier one whole,
// while keeping the position of the first occurrence. The merged set is
// validated before anything is written, so a failed run never touches the
// output file.
//
// Error policy:
//   - core source fails to load: *ParseError, fatal
//   - optional source fails to load: warning, source treated as empty
//   - a merged record lacks name or color: *ValidationError, fatal
//   - output cannot be written: *WriteError, fatal
//
// Storage goes through an afs.Service, so paths may be local files or
// in-memory URLs such as mem://localhost/repo/src/labels/core.json.
package labels
