package dom

import (
	"github.com/vango-dev/typewriter/pkg/vdom"
)

// AnimationName is the keyframe animation each typed character runs. The
// keyframes themselves must be defined by the page's stylesheet.
const AnimationName = "Typing"

// TypingOptions controls the typing animation. Both values are seconds.
type TypingOptions struct {
	// Duration is how long each character takes to appear.
	Duration float64 `json:"duration"`

	// Delay is when the first character starts appearing.
	Delay float64 `json:"delay"`
}

// DelayAt returns the animation delay of the character at idx.
func (o TypingOptions) DelayAt(idx int) float64 {
	return o.Delay + float64(idx)*o.Duration
}

// End returns when the last of n characters has finished appearing.
func (o TypingOptions) End(n int) float64 {
	return o.DelayAt(n)
}

// AddAnimatedTextNode appends one span per character of text, each revealed
// in turn by the Typing animation. The stagger is encoded in each span's
// animation-delay so the browser schedules it; no timers run here.
//
// style is applied to every span before the animation declarations, which
// take precedence on collision. Text is split by rune; each byte that is not
// valid UTF-8 becomes its own span holding U+FFFD. Empty text adds nothing.
// The original Builder is returned.
func (b *Builder) AddAnimatedTextNode(text string, opts TypingOptions, style vdom.Styles) *Builder {
	if b.err != nil {
		return b
	}

	idx := 0
	for _, c := range text {
		_, err := CreateElement("span").
			Style(style).
			Style(typingStyle(opts, idx)).
			AddTextNode(string(c)).
			SetParent(b.node)
		if err != nil {
			b.err = err
			return b
		}
		idx++
	}

	return b
}

// typingStyle returns the declarations animating the character at idx.
func typingStyle(opts TypingOptions, idx int) vdom.Styles {
	return vdom.Styles{
		"display":     "inline-block", // transforms need a box
		"white-space": "pre",
		"transform":   "scaleY(0)",

		"animation-name":      AnimationName,
		"animation-delay":     formatNumber(opts.DelayAt(idx)) + "s",
		"animation-duration":  formatNumber(opts.Duration) + "s",
		"animation-fill-mode": "forwards",
	}
}
