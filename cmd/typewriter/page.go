package main

import (
	"strconv"

	"github.com/vango-dev/typewriter/internal/config"
	"github.com/vango-dev/typewriter/pkg/dom"
	"github.com/vango-dev/typewriter/pkg/render"
	"github.com/vango-dev/typewriter/pkg/vdom"
)

// typingKeyframes defines the animation each character span references.
const typingKeyframes = `@keyframes ` + dom.AnimationName + ` {
  from { transform: scaleY(0); }
  to { transform: scaleY(1); }
}`

// pageStyle lays out the terminal on a dark background.
const pageStyle = `body { margin: 0; background: #0b0b0b; color: #d0d0d0; }
#terminal { padding: 2rem; }
#terminal > * { margin: 0 0 0.25rem 0; }`

// buildBody composes the page body: the wallpaper, if any, and one animated
// element per configured line inside the terminal container.
func buildBody(cfg *config.Config) (*vdom.VNode, error) {
	terminal := vdom.Main(vdom.ID("terminal"))
	body := vdom.Body(terminal)

	for i, step := range cfg.Sequence() {
		line, err := vdom.Element(step.Tag,
			vdom.Data("line", strconv.Itoa(i)),
			vdom.AriaLabel(step.Text),
		)
		if err != nil {
			return nil, err
		}
		style := cfg.Style.Clone().Merge(step.Style)
		_, err = dom.Wrap(line).
			AddAnimatedTextNode(step.Text, step.Options, style).
			SetParent(terminal)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Wallpaper != "" {
		if err := dom.RenderBackgroundImage(body, cfg.Wallpaper); err != nil {
			return nil, err
		}
	}

	return body, nil
}

// pageData wraps the body into a full document.
func pageData(cfg *config.Config, body *vdom.VNode) render.PageData {
	return render.PageData{
		Body:   body,
		Title:  cfg.Title,
		Lang:   cfg.Lang,
		Styles: []string{typingKeyframes, pageStyle},
		Meta: []render.MetaTag{
			{Name: "generator", Content: "typewriter " + version},
		},
	}
}
