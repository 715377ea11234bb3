// Package html provides a donate.HTMLParser that walks the raw
// golang.org/x/net/html node tree.
package html

import (
	"io"
	"slices"
	"strings"

	"github.com/fwojciec/donate"
	"golang.org/x/net/html"
)

// Ensure Parser implements donate.HTMLParser at compile time.
var _ donate.HTMLParser = (*Parser)(nil)

// Parser parses HTML with the x/net/html tokenizer.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an HTML page and returns its document node.
func (p *Parser) Parse(r io.Reader) (donate.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, donate.Errorf(donate.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{n: doc}, nil
}

// Ensure Node implements donate.Node at compile time.
var _ donate.Node = (*Node)(nil)

// Node wraps an element or document node.
type Node struct {
	n *html.Node
}

// Find returns matching descendant elements in document order.
func (n *Node) Find(tag string, classes ...string) []donate.Node {
	var nodes []donate.Node
	var walk func(*html.Node)
	walk = func(parent *html.Node) {
		for c := parent.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if (tag == "" || c.Data == tag) && hasClasses(c, classes) {
				nodes = append(nodes, &Node{n: c})
			}
			walk(c)
		}
	}
	walk(n.n)
	return nodes
}

// hasClasses reports whether node carries every class token in classes.
func hasClasses(node *html.Node, classes []string) bool {
	if len(classes) == 0 {
		return true
	}
	attr, _ := attr(node, "class")
	tokens := strings.Fields(attr)
	for _, class := range classes {
		if !slices.Contains(tokens, class) {
			return false
		}
	}
	return true
}

// Parent returns the parent element, or nil.
func (n *Node) Parent() donate.Node {
	p := n.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return &Node{n: p}
}

// NextSibling returns the next sibling element, or nil.
func (n *Node) NextSibling() donate.Node {
	for s := n.n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return &Node{n: s}
		}
	}
	return nil
}

// Tag returns the element name.
func (n *Node) Tag() string {
	if n.n.Type == html.DocumentNode {
		return "#document"
	}
	return n.n.Data
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return attr(n.n, name)
}

func attr(node *html.Node, name string) (string, bool) {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the text of all descendants.
func (n *Node) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n.n)
	return b.String()
}

// OwnText returns the text of direct text children.
func (n *Node) OwnText() string {
	var b strings.Builder
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// Strings returns the trimmed, non-blank descendant text nodes.
func (n *Node) Strings() []string {
	var out []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				if text := strings.TrimSpace(c.Data); text != "" {
					out = append(out, text)
				}
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n.n)
	return out
}
