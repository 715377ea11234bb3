// Package goquery provides a donate.HTMLParser built on CSS selectors.
package goquery

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/donate"
)

// Ensure Parser implements donate.HTMLParser at compile time.
var _ donate.HTMLParser = (*Parser)(nil)

// Parser parses HTML into goquery selections.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an HTML page and returns its document node.
func (p *Parser) Parse(r io.Reader) (donate.Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, donate.Errorf(donate.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}

// Ensure Node implements donate.Node at compile time.
var _ donate.Node = (*Node)(nil)

// Node wraps a single-node goquery selection.
type Node struct {
	sel *goquery.Selection
}

// Selector builds a CSS selector matching tag elements that carry every
// class in classes. Class tokens are matched exactly with the ~= attribute
// operator so that generated class names need no escaping.
func Selector(tag string, classes ...string) string {
	var b strings.Builder
	if tag == "" {
		tag = "*"
	}
	b.WriteString(tag)
	for _, class := range classes {
		fmt.Fprintf(&b, "[class~=%q]", class)
	}
	return b.String()
}

// Find returns matching descendant elements in document order.
func (n *Node) Find(tag string, classes ...string) []donate.Node {
	var nodes []donate.Node
	n.sel.Find(Selector(tag, classes...)).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// Parent returns the parent element, or nil.
func (n *Node) Parent() donate.Node {
	p := n.sel.Parent()
	if p.Length() == 0 {
		return nil
	}
	return &Node{sel: p}
}

// NextSibling returns the next sibling element, or nil.
func (n *Node) NextSibling() donate.Node {
	s := n.sel.Next()
	if s.Length() == 0 {
		return nil
	}
	return &Node{sel: s}
}

// Tag returns the element name.
func (n *Node) Tag() string {
	return goquery.NodeName(n.sel)
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the text of all descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// OwnText returns the text of direct text children.
func (n *Node) OwnText() string {
	var b strings.Builder
	n.sel.Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "#text" {
			b.WriteString(s.Text())
		}
	})
	return b.String()
}

// Strings returns the trimmed, non-blank descendant text nodes.
func (n *Node) Strings() []string {
	var out []string
	collectStrings(n.sel, &out)
	return out
}

func collectStrings(sel *goquery.Selection, out *[]string) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "#text":
			if text := strings.TrimSpace(s.Text()); text != "" {
				*out = append(*out, text)
			}
		case "#comment":
		default:
			collectStrings(s, out)
		}
	})
}
