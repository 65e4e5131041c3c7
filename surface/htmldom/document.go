// Package htmldom is a headless host page: an HTML document held in memory
// that plate diagrams are drawn into and that can be rendered back to HTML.
package htmldom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pipguide/surface"
)

var _ surface.Surface = (*Document)(nil)

// Document is an HTML page. It is not safe for concurrent use.
type Document struct {
	root *html.Node
	ids  map[string]*html.Node
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Document{root: root, ids: make(map[string]*html.Node)}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(page string) (*Document, error) {
	return Parse(strings.NewReader(page))
}

// ElementByID finds the element whose id attribute is id.
func (d *Document) ElementByID(id string) (surface.Element, bool) {
	n := d.lookup(id)
	if n == nil {
		return nil, false
	}
	return &element{doc: d, node: n}, true
}

func (d *Document) lookup(id string) *html.Node {
	if n, ok := d.ids[id]; ok {
		if attached(d.root, n) && htmlquery.SelectAttr(n, "id") == id {
			return n
		}
		delete(d.ids, id)
	}
	if strings.Contains(id, "'") {
		return nil
	}
	n := htmlquery.FindOne(d.root, fmt.Sprintf("//*[@id='%s']", id))
	if n != nil {
		d.ids[id] = n
	}
	return n
}

// Render writes the whole page.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the page, or the empty string if rendering fails.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML renders the children of the element with the given id.
func (d *Document) InnerHTML(id string) (string, bool) {
	n := d.lookup(id)
	if n == nil {
		return "", false
	}
	return htmlquery.OutputHTML(n, false), true
}

func attached(root, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

type element struct {
	doc  *Document
	node *html.Node
}

func (e *element) Append(tag string) surface.Element {
	child := &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: e.childNamespace(tag),
	}
	e.node.AppendChild(child)
	return &element{doc: e.doc, node: child}
}

// childNamespace keeps svg content in the svg namespace so that it renders
// as foreign content.
func (e *element) childNamespace(tag string) string {
	if tag == "svg" || e.node.Namespace == "svg" {
		return "svg"
	}
	return ""
}

func (e *element) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			e.reindex(name, value)
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
	e.reindex(name, value)
}

func (e *element) reindex(name, value string) {
	if name == "id" {
		e.doc.ids[value] = e.node
	}
}

func (e *element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *element) ByClass(class string) []surface.Element {
	nodes := htmlquery.Find(e.node, fmt.Sprintf(".//*[contains(concat(' ', normalize-space(@class), ' '), ' %s ')]", class))
	out := make([]surface.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &element{doc: e.doc, node: n})
	}
	return out
}

func (e *element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}
