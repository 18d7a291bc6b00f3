package vdom

import "testing"

func TestStylesMerge(t *testing.T) {
	tests := []struct {
		name  string
		steps []Styles
		want  Styles
	}{
		{
			name:  "disjoint keys union",
			steps: []Styles{{"a": "1"}, {"b": "2"}},
			want:  Styles{"a": "1", "b": "2"},
		},
		{
			name:  "last write wins",
			steps: []Styles{{"a": "1"}, {"a": "2"}},
			want:  Styles{"a": "2"},
		},
		{
			name:  "empty value removes",
			steps: []Styles{{"a": "1", "b": "2"}, {"a": ""}},
			want:  Styles{"b": "2"},
		},
		{
			name:  "nil merge keeps existing",
			steps: []Styles{{"a": "1"}, nil},
			want:  Styles{"a": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Div()
			for _, s := range tt.steps {
				node.MergeStyle(s)
			}
			if len(node.Style) != len(tt.want) {
				t.Fatalf("Style = %v, want %v", node.Style, tt.want)
			}
			for k, v := range tt.want {
				if node.Style[k] != v {
					t.Errorf("Style[%q] = %q, want %q", k, node.Style[k], v)
				}
			}
		})
	}
}

func TestStylesString(t *testing.T) {
	s := Styles{"opacity": "0.1", "display": "inline-block", "z-index": "-1"}
	want := "display: inline-block; opacity: 0.1; z-index: -1"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := Styles(nil).String(); got != "" {
		t.Errorf("nil String() = %q, want empty", got)
	}
}

func TestStylesClone(t *testing.T) {
	s := Styles{"a": "1"}
	c := s.Clone()
	c["a"] = "2"
	if s["a"] != "1" {
		t.Error("Clone shares storage with original")
	}
	if Styles(nil).Clone() != nil {
		t.Error("Clone(nil) should be nil")
	}
}
