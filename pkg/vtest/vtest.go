package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/typewriter/pkg/render"
	"github.com/vango-dev/typewriter/pkg/vdom"
)

// RenderToString renders a node to HTML, failing the test on error.
func RenderToString(tb testing.TB, node *vdom.VNode) string {
	tb.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		tb.Fatalf("render failed: %v", err)
	}
	return html
}

// ExpectContains asserts that rendered output contains a substring.
//
// Example:
//
//	vtest.ExpectContains(t, body, `src="bg.png"`)
func ExpectContains(tb testing.TB, node *vdom.VNode, expected string) {
	tb.Helper()
	html := RenderToString(tb, node)
	if !strings.Contains(html, expected) {
		tb.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(tb testing.TB, node *vdom.VNode, unexpected string) {
	tb.Helper()
	html := RenderToString(tb, node)
	if strings.Contains(html, unexpected) {
		tb.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
func ExpectAttribute(tb testing.TB, node *vdom.VNode, attr, value string) {
	tb.Helper()
	html := RenderToString(tb, node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		tb.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectStyle asserts that node declares property with the given value.
func ExpectStyle(tb testing.TB, node *vdom.VNode, property, value string) {
	tb.Helper()
	got, ok := node.Style[property]
	if !ok {
		tb.Errorf("style %q not set on <%s>, have %q", property, node.Tag, node.Style.String())
		return
	}
	if got != value {
		tb.Errorf("style %q = %q, want %q", property, got, value)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
