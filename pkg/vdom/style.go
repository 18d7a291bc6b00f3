package vdom

import (
	"sort"
	"strings"
)

// Styles maps CSS property names (e.g. "white-space") to values.
type Styles map[string]string

// Merge copies every declaration of other into s, overriding on collision.
// An empty value removes the property, as assigning "" to a style property
// does in a browser. Merge returns s, allocating it if nil.
func (s Styles) Merge(other Styles) Styles {
	if s == nil {
		s = make(Styles, len(other))
	}
	for k, v := range other {
		if v == "" {
			delete(s, k)
			continue
		}
		s[k] = v
	}
	return s
}

// Clone returns a copy of s.
func (s Styles) Clone() Styles {
	if s == nil {
		return nil
	}
	out := make(Styles, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// String serialises the declarations as an inline style attribute value,
// sorted by property name for deterministic output.
func (s Styles) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
	}
	return b.String()
}

// MergeStyle merges styles onto the node's inline style.
func (v *VNode) MergeStyle(styles Styles) {
	v.Style = v.Style.Merge(styles)
}
