package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/typewriter/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "br",
			node: vdom.Br(),
			want: `<br>`,
		},
		{
			name: "img",
			node: vdom.Img(vdom.Src("/image.png"), vdom.Alt("test")),
			want: `<img alt="test" src="/image.png">`,
		},
		{
			name: "img with stray children",
			node: vdom.Img(vdom.Src("/a.png"), vdom.Text("ignored")),
			want: `<img src="/a.png">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Attr{Key: "hidden", Value: true}, vdom.Attr{Key: "aria-hidden", Value: true})
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, " hidden") {
		t.Errorf("should contain hidden, got %q", html)
	}
	if strings.Contains(html, ` hidden="true"`) {
		t.Errorf("boolean attrs should not have values, got %q", html)
	}
	if !strings.Contains(html, `aria-hidden="true"`) {
		t.Errorf("aria-hidden is not boolean, got %q", html)
	}
}

func TestRenderStyle(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	t.Run("declarations sorted", func(t *testing.T) {
		node := vdom.Span(vdom.Styles{"white-space": "pre", "display": "inline-block"}, "a")
		html, err := renderer.RenderToString(node)
		if err != nil {
			t.Fatal(err)
		}
		want := `<span style="display: inline-block; white-space: pre">a</span>`
		if html != want {
			t.Errorf("got %q, want %q", html, want)
		}
	})

	t.Run("literal style attribute first", func(t *testing.T) {
		node := vdom.Div(vdom.Styles{"opacity": "0.1"})
		if err := node.SetAttribute("style", "color: red;"); err != nil {
			t.Fatal(err)
		}
		html, err := renderer.RenderToString(node)
		if err != nil {
			t.Fatal(err)
		}
		if got := parsedAttr(t, html, "style"); got != "color: red; opacity: 0.1" {
			t.Errorf("style = %q", got)
		}
	})

	t.Run("quotes escaped", func(t *testing.T) {
		node := vdom.Div(vdom.Styles{"font-family": `"Fira Code"`})
		html, err := renderer.RenderToString(node)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(html, `style="font-family: &quot;Fira Code&quot;"`) {
			t.Errorf("got %q", html)
		}
	})
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true, Indent: "  "})

	node := vdom.Div(
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Span("a"), vdom.Span(" "), vdom.Span("b")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n  <h1>Title</h1>\n  <p><span>a</span><span> </span><span>b</span></p>\n</div>"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderNilNode(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("nil node should produce empty string, got %q", html)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	_, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRenderWriterErrorPropagates(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	err := renderer.RenderToWriter(failWriter{}, vdom.Div("x"))
	if !errors.Is(err, errWrite) {
		t.Errorf("error = %v, want %v", err, errWrite)
	}
}

// failAfter accepts n writes and fails every write after that.
type failAfter struct {
	n      int
	writes int
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.writes >= f.n {
		return 0, errWrite
	}
	f.writes++
	return len(p), nil
}

func TestRenderPrettyWriterErrorPropagates(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})
	node := vdom.Main(
		vdom.P(vdom.Span("a"), vdom.Span("b")),
		vdom.Pre(vdom.Text("c")),
	)

	counter := &failAfter{n: 1 << 30}
	if err := renderer.RenderToWriter(counter, node); err != nil {
		t.Fatal(err)
	}

	for n := 0; n < counter.writes; n++ {
		err := renderer.RenderToWriter(&failAfter{n: n}, node)
		if !errors.Is(err, errWrite) {
			t.Errorf("failing write %d: error = %v, want %v", n, err, errWrite)
		}
	}
}

func TestRenderRawTextElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	css := `@keyframes Typing { from { transform: scaleY(0); } } p > span { color: "lime"; }`
	html, err := renderer.RenderToString(vdom.Style(css))
	if err != nil {
		t.Fatal(err)
	}
	if html != "<style>"+css+"</style>" {
		t.Errorf("got %q", html)
	}

	if _, err := renderer.RenderToString(vdom.Style(vdom.Span())); err == nil {
		t.Error("expected error for an element inside <style>")
	}
}

func TestRenderToWriter(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	if err := renderer.RenderToWriter(&buf, vdom.Div(vdom.Text("Hello"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "<div>Hello</div>" {
		t.Errorf("got %q, want %q", buf.String(), "<div>Hello</div>")
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	label := "$ echo \"it's\" > out.txt\n& done"
	node := vdom.P(vdom.AriaLabel(label), vdom.Data("line", "0"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.ContainsAny(strings.TrimSuffix(strings.TrimPrefix(html, "<p "), "></p>"), "<>\n") {
		t.Errorf("attribute value not escaped: %q", html)
	}
	if got := parsedAttr(t, html, "aria-label"); got != label {
		t.Errorf("aria-label round trip = %q, want %q", got, label)
	}
}

func TestAttrToString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{true, "true"},
		{false, "false"},
		{3, "3"},
		{int64(-4), "-4"},
		{0.1, "0.1"},
		{uint8(7), "7"},
	}
	for _, tt := range tests {
		if got := attrToString(tt.in); got != tt.want {
			t.Errorf("attrToString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
