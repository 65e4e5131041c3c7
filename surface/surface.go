// Package surface describes the drawing capabilities a plate diagram needs
// from its host page.
package surface

// Element is one node of the host's visual tree.
type Element interface {
	// Append creates a child element with the given tag and returns it.
	Append(tag string) Element
	SetAttr(name, value string)
	Attr(name string) (string, bool)
	SetText(text string)
	// ByClass returns the descendants carrying class, in document order.
	ByClass(class string) []Element
	// Remove detaches the element from its parent.
	Remove()
}

// Surface resolves elements of the host page by id.
type Surface interface {
	ElementByID(id string) (Element, bool)
}
