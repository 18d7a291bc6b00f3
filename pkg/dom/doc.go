// Package dom builds presentation trees with a fluent Builder.
//
//	node, err := dom.CreateElement("div").
//	    SetProperty("id", "root").
//	    AddTextNode("hi").
//	    SetParent(container)
//
// AddAnimatedTextNode produces a "typing" reveal: every character becomes an
// inline-block span animated by the Typing keyframes, delayed by its
// position. Rendering engines run the stagger themselves, so the cost here
// is one span per character and no timers.
//
// RenderBackgroundImage places a faint wallpaper behind the page, and
// ToPixelsString and Delay are small helpers for callers composing their
// own sequences.
package dom
