package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/typewriter/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the document's root content container. It is rendered as
	// the <body> element; nodes with another tag are wrapped in one.
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS blocks, emitted verbatim
	Styles []string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string // name attribute
	Content string // content attribute
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<html lang="%s">`+"\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}

	body := page.Body
	if body == nil {
		body = vdom.Body()
	} else if body.Tag != "body" {
		body = &vdom.VNode{Kind: vdom.KindElement, Tag: "body", Children: []*vdom.VNode{body}}
	}
	if err := r.RenderToWriter(w, body); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n</html>\n"); err != nil {
		return err
	}

	r.logger.Debug("rendered page", "title", page.Title, "nodes", countNodes(body))
	return nil
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.If(page.Title != "", vdom.Title(page.Title)),
		vdom.Range(page.Meta, func(m MetaTag, _ int) *vdom.VNode {
			return vdom.Meta(vdom.Name(m.Name), vdom.Content(m.Content))
		}),
		vdom.Range(page.StyleSheets, func(href string, _ int) *vdom.VNode {
			return vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href))
		}),
		vdom.Range(page.Styles, func(css string, _ int) *vdom.VNode {
			return vdom.Style(css)
		}),
	)
	if err := r.RenderToWriter(w, head); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func countNodes(root *vdom.VNode) int {
	n := 0
	vdom.Walk(root, func(*vdom.VNode) bool {
		n++
		return true
	})
	return n
}
