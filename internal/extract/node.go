// Package extract locates fields in parsed HTML and normalizes the text,
// numbers, dates, ids and image URLs found there.
//
// A selector that matches nothing is an expected condition: lookups return
// nil rather than an error.
package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Node is a nil-safe view over a goquery selection.
type Node struct {
	sel *goquery.Selection
}

// Parse parses an HTML document.
func Parse(body []byte) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return &Node{sel: doc.Selection}, nil
}

// Wrap adapts an existing selection.
func Wrap(sel *goquery.Selection) *Node {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return &Node{sel: sel}
}

// Find returns the first match of selector, or nil.
func (n *Node) Find(selector string) *Node {
	if n == nil {
		return nil
	}
	return Wrap(n.sel.Find(selector).First())
}

// All returns every match of selector in document order.
func (n *Node) All(selector string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &Node{sel: s})
	})
	return out
}

// Exists reports whether selector matches at least one node.
func (n *Node) Exists(selector string) bool {
	return n != nil && n.sel.Find(selector).Length() > 0
}

// Text returns the cleaned text of the first match of selector, or of n
// itself when selector is empty. Nil when nothing matches or the text is blank.
func (n *Node) Text(selector string, strip ...string) *string {
	target := n.target(selector)
	if target == nil {
		return nil
	}
	return CollapseText(target.sel.Text(), strip...)
}

// OwnText is like Text but ignores text inside child elements.
func (n *Node) OwnText(selector string) *string {
	target := n.target(selector)
	if target == nil {
		return nil
	}
	var b strings.Builder
	for c := target.sel.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return CollapseText(b.String())
}

// Attr returns attribute name of the first match of selector, or of n itself
// when selector is empty.
func (n *Node) Attr(selector, name string) *string {
	target := n.target(selector)
	if target == nil {
		return nil
	}
	v, ok := target.sel.Attr(name)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// HTML returns the inner HTML of n.
func (n *Node) HTML() string {
	if n == nil {
		return ""
	}
	h, err := n.sel.Html()
	if err != nil {
		return ""
	}
	return h
}

// Texts returns the cleaned text of every match of selector, skipping blanks.
func (n *Node) Texts(selector string) []string {
	var out []string
	for _, c := range n.All(selector) {
		if t := c.Text(""); t != nil {
			out = append(out, *t)
		}
	}
	return out
}

func (n *Node) target(selector string) *Node {
	if selector == "" {
		return n
	}
	return n.Find(selector)
}
