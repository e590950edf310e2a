// Package goquery converts MEI page markup into plain text using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/carspec"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultContentSelectors lists where car text is looked for, in order.
// The first selector matching an element wins; when none match, the whole
// document is used.
var DefaultContentSelectors = []string{"pre", "main", "article"}

// Ensure TextExtractor implements carspec.TextExtractor at compile time.
var _ carspec.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts the text of the first matching content element.
type TextExtractor struct {
	selectors []string
}

// NewTextExtractor creates a TextExtractor. Without selectors it uses
// DefaultContentSelectors.
func NewTextExtractor(selectors ...string) *TextExtractor {
	if len(selectors) == 0 {
		selectors = DefaultContentSelectors
	}
	return &TextExtractor{selectors: selectors}
}

// ExtractText returns the text nodes of the content element joined by
// newlines. Script and style contents are skipped.
func (e *TextExtractor) ExtractText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", carspec.Errorf(carspec.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range e.selectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return nodeText(sel.Nodes), nil
		}
	}
	return nodeText(doc.Nodes), nil
}

func nodeText(nodes []*html.Node) string {
	var parts []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			parts = append(parts, n.Data)
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Template:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}
