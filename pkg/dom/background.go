package dom

import (
	"github.com/vango-dev/typewriter/pkg/vdom"
)

// backgroundStyle centers the image in the viewport behind all content.
var backgroundStyle = vdom.Styles{
	"position":   "fixed",
	"top":        "50%",
	"left":       "50%",
	"display":    "inline-block",
	"width":      "fit-content",
	"max-width":  "70%",
	"max-height": "70%",
	"opacity":    "0.1",
	"transform":  "translate(-50%, -50%)",
	"object-fit": "cover",
	"z-index":    "-1",
}

// RenderBackgroundImage appends a faint, centered image showing wallpaper as
// the last child of body.
func RenderBackgroundImage(body *vdom.VNode, wallpaper string) error {
	_, err := CreateElement("img").
		SetProperty("src", wallpaper).
		Style(backgroundStyle).
		SetParent(body)
	return err
}
