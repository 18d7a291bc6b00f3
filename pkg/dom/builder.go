package dom

import (
	"github.com/vango-dev/typewriter/internal/errors"
	"github.com/vango-dev/typewriter/pkg/vdom"
)

// Builder incrementally configures one element and finalizes it into a tree.
//
// Mutators return the same Builder so calls can be chained. The first
// failure from the underlying tree is recorded and every later mutation is
// skipped; the terminal methods Build and SetParent report it. A Builder is
// meant to be configured and then finalized once.
type Builder struct {
	node *vdom.VNode
	err  error
}

// CreateElement returns a Builder for a new element with the given tag.
func CreateElement(tag string) *Builder {
	node, err := vdom.NewElement(tag)
	return &Builder{node: node, err: err}
}

// Wrap returns a Builder over an existing element.
func Wrap(node *vdom.VNode) *Builder {
	if !node.IsElement() {
		return &Builder{err: errors.New("E104").WithDetail("only elements can be wrapped")}
	}
	return &Builder{node: node}
}

// SetProperty sets a single attribute on the element.
func (b *Builder) SetProperty(name, value string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.node.SetAttribute(name, value)
	return b
}

// AddTextNode appends a text child after any existing children.
func (b *Builder) AddTextNode(text string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.node.AppendChild(vdom.NewText(text))
	return b
}

// Style merges styles onto the element's inline style; keys already set
// are overridden.
func (b *Builder) Style(styles vdom.Styles) *Builder {
	if b.err != nil {
		return b
	}
	b.node.MergeStyle(styles)
	return b
}

// SetParent appends the element as the last child of parent and returns it.
func (b *Builder) SetParent(parent *vdom.VNode) (*vdom.VNode, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.err = parent.AppendChild(b.node); b.err != nil {
		return nil, b.err
	}
	return b.Build()
}

// Build returns the element without attaching it anywhere.
func (b *Builder) Build() (*vdom.VNode, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.node, nil
}

// Err returns the first failure recorded by the chain, if any.
func (b *Builder) Err() error {
	return b.err
}
