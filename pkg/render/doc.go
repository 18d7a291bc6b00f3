// Package render converts typewriter VNode trees into HTML.
//
// It handles text and attribute escaping, void elements, boolean
// attributes and inline style serialisation, and renders full documents
// with a head section and inline stylesheets.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Body:   body,
//	    Title:  "Terminal",
//	    Styles: []string{keyframesCSS},
//	})
//
// Pretty printing only re-indents elements whose children are all block
// elements; inline content such as per-character spans is written as is.
package render
