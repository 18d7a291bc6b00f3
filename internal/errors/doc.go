// Package errors provides structured, coded errors for typewriter.
//
// Every failure raised by the presentation tree, the configuration loader or
// the CLI carries a code (e.g. "E104") that maps to a short message and a
// longer explanation. Codes are grouped by category:
//   - tree: node creation and attachment failures
//   - config: typewriter.json read, parse and validation failures
//   - cli: output and flag failures
//
// # Usage
//
//	err := errors.New("E104").
//	    WithDetail("node cannot be appended to its own descendant")
//
//	if errors.Is(err, errors.ErrHierarchyRequest) { ... }
//
// Format renders an error for terminal display.
package errors
