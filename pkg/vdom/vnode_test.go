package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeAccessors(t *testing.T) {
	var nilNode *VNode
	if nilNode.FirstChild() != nil || nilNode.LastChild() != nil {
		t.Error("nil node should have no children")
	}
	if nilNode.TextContent() != "" {
		t.Error("nil node TextContent should be empty")
	}
	if nilNode.IsElement() {
		t.Error("nil node is not an element")
	}

	a, b := Span("a"), Text("b")
	root := Div(a, b, P(Span("c")))
	if root.FirstChild() != a {
		t.Error("FirstChild mismatch")
	}
	if root.LastChild().Tag != "p" {
		t.Errorf("LastChild tag = %q, want p", root.LastChild().Tag)
	}
	if got := root.TextContent(); got != "abc" {
		t.Errorf("TextContent() = %q, want abc", got)
	}
	if got := len(root.ChildElements()); got != 2 {
		t.Errorf("ChildElements len = %d, want 2", got)
	}
	if b.TextContent() != "b" {
		t.Errorf("text node TextContent = %q", b.TextContent())
	}
}

func TestVNodeAttr(t *testing.T) {
	node := Div(ID("root"))
	if v, ok := node.Attr("ID"); !ok || v != "root" {
		t.Errorf("Attr(ID) = %v, %v", v, ok)
	}
	if _, ok := node.Attr("class"); ok {
		t.Error("Attr(class) should be unset")
	}
	if _, ok := Text("x").Attr("id"); ok {
		t.Error("text node has no attributes")
	}
}

func TestAttrIsEmpty(t *testing.T) {
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
	if ID("x").IsEmpty() {
		t.Error("ID attr should not be empty")
	}
}
