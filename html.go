package donate

import "io"

// Node is an element or document node of a parsed HTML page.
//
// Extractors for HTML exports are written once against Node and run on any
// HTMLParser implementation. Implementations must return identical results
// for the same input.
type Node interface {
	// Find returns all descendant elements with the given tag that carry
	// every class in classes, in document order. An empty tag matches any
	// element.
	Find(tag string, classes ...string) []Node

	// Parent returns the parent element, or nil at the top of the tree.
	Parent() Node

	// NextSibling returns the next sibling element, or nil.
	NextSibling() Node

	// Tag returns the lower-case element name.
	Tag() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Text returns the concatenated text of all descendant text nodes.
	Text() string

	// OwnText returns the concatenated text of direct text children only.
	OwnText() string

	// Strings returns the non-blank descendant text nodes, trimmed, in
	// document order.
	Strings() []string
}

// HTMLParser parses an HTML page into a Node tree.
type HTMLParser interface {
	Parse(r io.Reader) (Node, error)
}
