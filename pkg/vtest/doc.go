// Package vtest provides testing helpers for typewriter trees.
//
// Assertions render the tree with pkg/render and inspect the HTML, or look
// at a node's style declarations directly:
//
//	vtest.ExpectAttribute(t, body, "src", "bg.png")
//	vtest.ExpectStyle(t, img, "opacity", "0.1")
package vtest
