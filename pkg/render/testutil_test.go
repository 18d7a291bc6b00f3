package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// parsedAttr tokenizes rendered HTML and returns the unescaped value of key
// on the first start tag that carries it.
func parsedAttr(t *testing.T, s, key string) string {
	t.Helper()

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			t.Fatalf("no %q attribute in %q", key, s)
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			for _, a := range z.Token().Attr {
				if a.Key == key {
					return a.Val
				}
			}
		}
	}
}
