package convert

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func findElement(n *Node, tag string) *Node {
	if n == nil {
		return nil
	}
	if n.Type == ElementNode && n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestFromHTML_BuildsTree(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div ID="main" data-x="1"><p>hi <B>there</B></p><!-- note --></div>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	root := FromHTML(doc)
	if root == nil {
		t.Fatal("FromHTML returned nil for a document")
	}

	div := findElement(root, "div")
	if div == nil {
		t.Fatal("div not found in tree")
	}
	if div.Attr("id") != "main" {
		t.Fatalf("attribute keys should be lowercased, got id=%q", div.Attr("id"))
	}
	if div.Attr("data-x") != "1" {
		t.Fatalf("data-x = %q, want %q", div.Attr("data-x"), "1")
	}
	if div.Attr("missing") != "" {
		t.Fatalf("missing attribute should be empty, got %q", div.Attr("missing"))
	}

	// Comments are dropped entirely.
	if len(div.Children) != 1 {
		t.Fatalf("div should have exactly the <p> child, got %d children", len(div.Children))
	}

	b := findElement(root, "b")
	if b == nil {
		t.Fatal("uppercase <B> should become lowercase tag b")
	}
	if len(b.Children) != 1 || b.Children[0].Type != TextNode || b.Children[0].Text != "there" {
		t.Fatalf("unexpected b children: %+v", b.Children)
	}
}

func TestFromHTML_Nil(t *testing.T) {
	if FromHTML(nil) != nil {
		t.Fatal("FromHTML(nil) should be nil")
	}
}

func TestNodeBuilders(t *testing.T) {
	n := Element("DIV", map[string]string{"class": "x"}, Text("a"), Element("br", nil))
	if n.Tag != "div" {
		t.Fatalf("Element should lowercase the tag, got %q", n.Tag)
	}
	if len(n.Children) != 2 {
		t.Fatalf("want 2 children, got %d", len(n.Children))
	}
	if n.Children[0].Type != TextNode || n.Children[0].Text != "a" {
		t.Fatalf("unexpected first child: %+v", n.Children[0])
	}
}
