package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/typewriter/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Elements holding inline content are never re-indented, so
	// whitespace-sensitive content renders the same either way.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Logger receives debug output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Renderer converts VNode trees to HTML.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		config: config,
		logger: logger.With("component", "render"),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if len(node.Children) > 0 {
			r.logger.Debug("dropping children of void element", "tag", tag, "children", len(node.Children))
		}
		return nil
	}

	if isRawTextElement(tag) {
		for _, child := range node.Children {
			if child.Kind != vdom.KindText {
				return fmt.Errorf("<%s> can only hold text, got %s", tag, child.Kind)
			}
			if _, err := io.WriteString(w, child.Text); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "</%s>", tag)
		return err
	}

	block := r.config.Pretty && hasBlockLayout(node)
	for _, child := range node.Children {
		if block {
			if err := r.writeIndent(w, depth+1); err != nil {
				return err
			}
		}
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if block {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", tag)
	return err
}

// hasBlockLayout reports whether every child is a non-inline element, which
// makes whitespace between children insignificant.
func hasBlockLayout(node *vdom.VNode) bool {
	if len(node.Children) == 0 || isInlineElement(node.Tag) || isWhitespaceSensitive(node.Tag) {
		return false
	}
	for _, c := range node.Children {
		if c.Kind != vdom.KindElement || isInlineElement(c.Tag) {
			return false
		}
	}
	return true
}

// renderAttributes renders all attributes for an element, followed by the
// inline style.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		if key == "style" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Boolean attributes
		if isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrToString(value))); err != nil {
			return err
		}
	}

	if style := inlineStyle(node); style != "" {
		if _, err := fmt.Fprintf(w, ` style="%s"`, escapeAttr(style)); err != nil {
			return err
		}
	}

	return nil
}

// inlineStyle joins a literal style attribute with the node's style
// declarations. Declarations come last so they win in the browser.
func inlineStyle(node *vdom.VNode) string {
	var parts []string
	if s := strings.TrimRight(strings.TrimSpace(attrToString(node.Props["style"])), ";"); s != "" {
		parts = append(parts, s)
	}
	if s := node.Style.String(); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent starts a new line indented to depth for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
