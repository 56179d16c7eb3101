/*
Package html extracts the textual content of HTML as a list of text fragments.

Every text node of an HTML tree becomes one value of a fwdlist.List, in
document order. Content of script and style elements is skipped, as it is
not visible text.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"

	"github.com/npillmayer/fwdlist"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'fwdlist'
func tracer() tracing.Trace {
	return tracing.Select("fwdlist")
}

// InnerText creates a list of text fragments for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (*fwdlist.List[string], error) {
	if n == nil {
		return nil, fmt.Errorf("html: node is nil: %w", fwdlist.ErrIllegalArguments)
	}
	l := fwdlist.New[string]()
	collectText(n, l.Cursor())
	return l, nil
}

// collectText inserts text nodes in front of cursor c, leaving c behind the
// last inserted fragment.
func collectText(n *html.Node, c *fwdlist.Cursor[string]) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			tracer().Debugf("html: skipping <%s>", n.Data)
			return
		}
	case html.TextNode:
		c.Insert(n.Data)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		collectText(ch, c)
	}
}

// TextFromHTML creates a list of text fragments from the textual content of an
// HTML fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func TextFromHTML(input io.Reader) (*fwdlist.List[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	l := fwdlist.New[string]()
	c := l.Cursor()
	for _, n := range nodes {
		collectText(n, c)
	}
	tracer().Debugf("html: extracted %d text fragments", l.Len())
	return l, nil
}
