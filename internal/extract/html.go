package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// parseDoc builds a tolerant HTML tree. The html package implements the HTML5
// recovery algorithm, so unclosed tags, stray entities and bad nesting still
// produce a usable tree. A nil return only happens on reader failure, which a
// strings.Reader never produces, but callers treat nil as "no document".
func parseDoc(s string) *html.Node {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil
	}
	return doc
}

// flatText concatenates the text content of n and all its descendants.
func flatText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

// eachElement invokes fn for every element with the given tag name, in
// document order.
func eachElement(n *html.Node, tag string, fn func(*html.Node)) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode && n.Data == tag {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		eachElement(c, tag, fn)
	}
}

// childElements returns the direct element children of n with the given tag.
func childElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
	}
	return out
}

// textAfterLabel locates a <strong> (or <b>) element whose trimmed text
// equals label and returns the first text node following it among its
// siblings, cleaned. This is how the prose template attaches values to its
// "From:" / "To:" labels.
func textAfterLabel(doc *html.Node, label string) string {
	var found string
	for _, tag := range []string{"strong", "b"} {
		eachElement(doc, tag, func(n *html.Node) {
			if found != "" || Clean(flatText(n)) != label {
				return
			}
			for s := n.NextSibling; s != nil; s = s.NextSibling {
				if s.Type == html.TextNode {
					found = Clean(s.Data)
					return
				}
			}
		})
		if found != "" {
			break
		}
	}
	return found
}
