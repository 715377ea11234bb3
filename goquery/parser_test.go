package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/donate/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<div class="pam _3-95 _2ph- _a6-g uiBoxWhite noborder">
  <div class="_3-95 _2pim _a6-h _a6-i">alice</div>
  <table><tr><td class="_2pin _2piu _a6_r">Jan 1, 2024 9:00 am</td></tr></table>
  <a href="https://www.instagram.com/alice">alice</a>
</div>
<div class="pam _3-95 _2ph-">partial</div>
<p>lead <b>bold</b> tail</p>
</body></html>`

func TestSelector(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `div[class~="_a6-p"]`, goquery.Selector("div", "_a6-p"))
	assert.Equal(t, `*[class~="a"][class~="b"]`, goquery.Selector("", "a", "b"))
	assert.Equal(t, "td", goquery.Selector("td"))
}

func TestNode_Find(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewParser().Parse(strings.NewReader(page))
	require.NoError(t, err)

	t.Run("matches every class token", func(t *testing.T) {
		t.Parallel()

		blocks := doc.Find("div", "pam", "_3-95", "_2ph-", "_a6-g", "uiBoxWhite", "noborder")
		assert.Len(t, blocks, 1)
	})

	t.Run("matches class tokens exactly", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, doc.Find("div", "_a6"))
		assert.Len(t, doc.Find("div", "_3-95"), 3)
	})

	t.Run("matches any element when tag is empty", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, doc.Find("", "_2pin"), 1)
	})
}

func TestNode_Navigation(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewParser().Parse(strings.NewReader(page))
	require.NoError(t, err)

	anchors := doc.Find("a")
	require.Len(t, anchors, 1)
	a := anchors[0]

	href, ok := a.Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "https://www.instagram.com/alice", href)
	assert.Equal(t, "a", a.Tag())

	parent := a.Parent()
	require.NotNil(t, parent)
	assert.Equal(t, "div", parent.Tag())

	next := parent.NextSibling()
	require.NotNil(t, next)
	assert.Equal(t, "partial", next.Text())

	assert.Nil(t, a.NextSibling())

	root := doc.Find("html")[0]
	assert.Nil(t, root.Parent())
	assert.Equal(t, "#document", doc.Tag())
}

func TestNode_Text(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewParser().Parse(strings.NewReader(page))
	require.NoError(t, err)

	p := doc.Find("p")[0]

	assert.Equal(t, "lead bold tail", p.Text())
	assert.Equal(t, "lead  tail", p.OwnText())
	assert.Equal(t, []string{"lead", "bold", "tail"}, p.Strings())
}
