// Package vdom provides the in-memory presentation tree used by typewriter.
//
// VNode is the building block, representing either an element or a text
// node. Elements carry attributes (Props) and inline style declarations
// (Styles), and own their children in insertion order.
//
// # Tree operations
//
// NewElement, NewText, SetAttribute and AppendChild mirror the browser
// operations they stand in for, including their failures: invalid names,
// attaching to a nil parent and hierarchy violations are reported as coded
// errors from internal/errors. A node appended to a new parent is moved.
//
// # Element API
//
// Page skeletons can be composed with variadic factory functions:
//
//	Body(Class("terminal"),
//	    Div(ID("screen")),
//	    Styles{"background": "black"},
//	)
package vdom
