package instagram

import (
	"strings"

	"github.com/fwojciec/donate"
)

// Generated class sets used by Instagram HTML exports. Matching is by class
// token, so extra classes on an element do not break a match.
var (
	blockClasses   = []string{"pam", "_3-95", "_2ph-", "_a6-g", "uiBoxWhite", "noborder"}
	titleClasses   = []string{"_3-95", "_2pim", "_a6-h", "_a6-i"}
	labelClasses   = []string{"_2pin", "_a6_q"}
	timeClasses    = []string{"_2pin", "_2piu", "_a6_r"}
	sectionClasses = []string{"_a6-p"}
	messageTime    = []string{"_3-94", "_a6-o"}
	offMetaClasses = []string{"_4-u2", "_3-8x", "_4-u8"}
)

// narrowNoBreakSpace appears between time and meridiem in exported dates.
const narrowNoBreakSpace = "\u202f"

// text returns the trimmed text of n, or null when n is nil or blank.
func text(n donate.Node) donate.Value {
	if n == nil {
		return donate.Null()
	}
	return nonBlank(n.Text())
}

// nonBlank trims s and returns null for an empty result.
func nonBlank(s string) donate.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return donate.Null()
	}
	return donate.Text(s)
}

// timestamp returns the trimmed text of n with narrow no-break spaces removed.
func timestamp(n donate.Node) donate.Value {
	if n == nil {
		return donate.Null()
	}
	return nonBlank(strings.ReplaceAll(n.Text(), narrowNoBreakSpace, ""))
}

// firstTimestamp is timestamp restricted to the first text node under n.
func firstTimestamp(n donate.Node) donate.Value {
	v := firstString(n)
	if v.IsNull() {
		return v
	}
	return nonBlank(strings.ReplaceAll(v.String(), narrowNoBreakSpace, ""))
}

// firstString returns the first non-blank text node under n.
func firstString(n donate.Node) donate.Value {
	if n == nil {
		return donate.Null()
	}
	if s := n.Strings(); len(s) > 0 {
		return donate.Text(s[0])
	}
	return donate.Null()
}

// first returns the first node of nodes, or nil.
func first(nodes []donate.Node) donate.Node {
	return nth(nodes, 0)
}

// nth returns the node at index i, or nil.
func nth(nodes []donate.Node, i int) donate.Node {
	if i < 0 || i >= len(nodes) {
		return nil
	}
	return nodes[i]
}

// stringAt returns the string at index i, or null.
func stringAt(s []string, i int) donate.Value {
	if i < 0 || i >= len(s) {
		return donate.Null()
	}
	return donate.Text(s[i])
}

// href returns the href attribute of n, or null.
func href(n donate.Node) donate.Value {
	if n == nil {
		return donate.Null()
	}
	v, ok := n.Attr("href")
	if !ok {
		return donate.Null()
	}
	return nonBlank(v)
}

// blockTime returns the timestamp cell of a record block.
func blockTime(block donate.Node) donate.Value {
	return timestamp(first(block.Find("td", timeClasses...)))
}

// nestedDivString returns the first text found in a div nested inside
// another div of block. Records that list an author keep the value in
// such a nested div, after the label.
func nestedDivString(block donate.Node) donate.Value {
	for _, outer := range block.Find("div") {
		for _, inner := range outer.Find("div") {
			if v := firstString(inner); !v.IsNull() {
				return v
			}
		}
	}
	return donate.Null()
}

// divString returns the first text found in any div of block.
func divString(block donate.Node) donate.Value {
	for _, div := range block.Find("div") {
		if v := firstString(div); !v.IsNull() {
			return v
		}
	}
	return donate.Null()
}

// labelValue returns the value of a label cell: the first text of the div
// following the label text inside the cell.
func labelValue(cell donate.Node) donate.Value {
	if cell == nil {
		return donate.Null()
	}
	return firstString(first(cell.Find("div")))
}

// labelValues returns the value of every label cell in block.
func labelValues(block donate.Node) []donate.Value {
	cells := block.Find("td", labelClasses...)
	values := make([]donate.Value, 0, len(cells))
	for _, cell := range cells {
		values = append(values, labelValue(cell))
	}
	return values
}

// valueAt returns the value at index i, or null.
func valueAt(values []donate.Value, i int) donate.Value {
	if i < 0 || i >= len(values) {
		return donate.Null()
	}
	return values[i]
}

// labelStrings returns every text node of every label cell in block, in
// document order.
func labelStrings(block donate.Node) []string {
	var out []string
	for _, cell := range block.Find("td", labelClasses...) {
		out = append(out, cell.Strings()...)
	}
	return out
}

// ancestorDiv returns the nearest div enclosing n, or nil.
func ancestorDiv(n donate.Node) donate.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Tag() == "div" {
			return p
		}
	}
	return nil
}

// nextDiv returns the next sibling of n when it is a div, or nil.
func nextDiv(n donate.Node) donate.Node {
	if n == nil {
		return nil
	}
	next := n.NextSibling()
	if next == nil || next.Tag() != "div" {
		return nil
	}
	return next
}
