package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <span>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is a node of the presentation tree.
//
// A node is owned by whoever created it until it is attached to a parent;
// from then on the parent tree owns it. Parent is maintained by AppendChild
// and must not be assigned directly.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Style    Styles   // Inline style declarations
	Children []*VNode // Child nodes, in insertion order
	Text     string   // For KindText
	Parent   *VNode   // Owning node, nil while detached
}

// Props holds attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// IsElement reports whether v is a non-nil element node.
func (v *VNode) IsElement() bool {
	return v != nil && v.Kind == KindElement
}

// Attr returns the attribute value stored under name and whether it is set.
func (v *VNode) Attr(name string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	val, ok := v.Props[strings.ToLower(name)]
	return val, ok
}

// FirstChild returns the first child or nil.
func (v *VNode) FirstChild() *VNode {
	if v == nil || len(v.Children) == 0 {
		return nil
	}
	return v.Children[0]
}

// LastChild returns the last child or nil.
func (v *VNode) LastChild() *VNode {
	if v == nil || len(v.Children) == 0 {
		return nil
	}
	return v.Children[len(v.Children)-1]
}

// ChildElements returns the element children, skipping text nodes.
func (v *VNode) ChildElements() []*VNode {
	if v == nil {
		return nil
	}
	var out []*VNode
	for _, c := range v.Children {
		if c.Kind == KindElement {
			out = append(out, c)
		}
	}
	return out
}

// TextContent returns the concatenated text of v and all its descendants.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	var b strings.Builder
	v.writeText(&b)
	return b.String()
}

func (v *VNode) writeText(b *strings.Builder) {
	for _, c := range v.Children {
		if c.Kind == KindText {
			b.WriteString(c.Text)
			continue
		}
		c.writeText(b)
	}
}
