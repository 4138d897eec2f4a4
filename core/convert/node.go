// Package convert is the conversion core of clipmark: a recursive
// tree-to-Markdown transducer with per-tag formatting rules, absolute
// URL resolution, and idempotent whitespace normalization.
//
// The whole package is pure and total: no I/O, no shared state, and no
// error returns — unresolvable URLs and missing attributes degrade
// gracefully instead of aborting a conversion partway through.
package convert

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// NodeType discriminates the two Node variants.
type NodeType int

const (
	// TextNode carries literal text content.
	TextNode NodeType = iota
	// ElementNode carries a tag name, attributes, and ordered children.
	ElementNode
)

// Node is the converter's view of a DOM fragment: either text or an
// element with children. It is built once from a parsed selection and
// never mutated by the converter.
type Node struct {
	Type     NodeType
	Text     string            // TextNode only
	Tag      string            // ElementNode only, always lowercase
	Attrs    map[string]string // ElementNode only, may be nil
	Children []*Node           // ElementNode only, document order
}

// Attr returns the named attribute or "" when absent.
func (n *Node) Attr(key string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// FromHTML builds a Node tree from a parsed html.Node. Comments,
// doctypes, and other non-content nodes are dropped. Document and
// fragment containers become elements with no known tag, so they fall
// through the converter's transparent default rule.
func FromHTML(src *html.Node) *Node {
	if src == nil {
		return nil
	}

	switch src.Type {
	case html.TextNode:
		return &Node{Type: TextNode, Text: src.Data}

	case html.ElementNode, html.DocumentNode:
		n := &Node{
			Type: ElementNode,
			Tag:  strings.ToLower(dom.NodeName(src)),
		}
		if len(src.Attr) > 0 {
			n.Attrs = make(map[string]string, len(src.Attr))
			for _, a := range src.Attr {
				n.Attrs[strings.ToLower(a.Key)] = a.Val
			}
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if child := FromHTML(c); child != nil {
				n.Children = append(n.Children, child)
			}
		}
		return n

	default:
		return nil
	}
}

// Element builds an element Node. Mostly useful in tests and for
// callers assembling fragments without going through an HTML parser.
func Element(tag string, attrs map[string]string, children ...*Node) *Node {
	return &Node{
		Type:     ElementNode,
		Tag:      strings.ToLower(tag),
		Attrs:    attrs,
		Children: children,
	}
}

// Text builds a text Node.
func Text(content string) *Node {
	return &Node{Type: TextNode, Text: content}
}
