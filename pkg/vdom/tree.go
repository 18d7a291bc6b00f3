package vdom

import (
	"strings"

	"github.com/vango-dev/typewriter/internal/errors"
)

// NewElement creates a detached element node. The tag is lower-cased.
func NewElement(tag string) (*VNode, error) {
	if !validName(tag) {
		return nil, errors.New("E101").WithDetailf("tag %q", tag)
	}
	return &VNode{
		Kind:     KindElement,
		Tag:      strings.ToLower(tag),
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}, nil
}

// NewText creates a detached text node.
func NewText(text string) *VNode {
	return &VNode{Kind: KindText, Text: text}
}

// SetAttribute sets a single attribute. The name is lower-cased; the value is
// stored verbatim.
func (v *VNode) SetAttribute(name, value string) error {
	if !v.IsElement() {
		return errors.New("E104").WithDetail("attributes can only be set on elements")
	}
	if !validName(name) {
		return errors.New("E102").WithDetailf("attribute %q", name)
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[strings.ToLower(name)] = value
	return nil
}

// AppendChild appends child as the last child of v. A child that already has
// a parent is moved.
func (v *VNode) AppendChild(child *VNode) error {
	if v == nil {
		return errors.New("E103")
	}
	if child == nil {
		return errors.New("E104").WithDetail("child is nil")
	}
	if v.Kind != KindElement {
		return errors.New("E104").WithDetailf("cannot append to a %s node", v.Kind)
	}
	for n := v; n != nil; n = n.Parent {
		if n == child {
			return errors.New("E104").WithDetail("node cannot be appended to itself or its own descendant")
		}
	}
	v.attach(child)
	return nil
}

// RemoveChild detaches child from v.
func (v *VNode) RemoveChild(child *VNode) error {
	if v == nil || child == nil || child.Parent != v {
		return errors.New("E104").WithDetail("node is not a child of this parent")
	}
	child.detach()
	return nil
}

// attach appends child without validating the hierarchy. Callers guarantee
// that v is an element and child is not an ancestor of v.
func (v *VNode) attach(child *VNode) {
	child.detach()
	child.Parent = v
	v.Children = append(v.Children, child)
}

func (v *VNode) detach() {
	p := v.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == v {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	v.Parent = nil
}

// validName reports whether s is usable as a tag or attribute name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case r == '"', r == '\'', r == '<', r == '>', r == '/', r == '=':
			return false
		}
	}
	return true
}
