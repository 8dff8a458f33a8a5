package docx

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Node mutation helpers. All structural edits to the WordprocessingML tree
// go through these so that parent/sibling links stay consistent and
// rewrite passes never do raw pointer surgery.

// Elem creates a detached element node. The name may carry a namespace
// prefix ("w:pBdr").
func Elem(name string) *xmlquery.Node {
	prefix, local := splitName(name)
	return &xmlquery.Node{
		Type:   xmlquery.ElementNode,
		Data:   local,
		Prefix: prefix,
	}
}

// TextNode creates a detached text node.
func TextNode(s string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.TextNode, Data: s}
}

func splitName(name string) (prefix, local string) {
	if i := strings.Index(name, ":"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// NodeName returns the qualified name ("w:p") of an element node.
func NodeName(n *xmlquery.Node) string {
	if n.Prefix == "" {
		return n.Data
	}
	return n.Prefix + ":" + n.Data
}

// AttrValue returns the value of the named attribute, or "".
func AttrValue(n *xmlquery.Node, name string) string {
	prefix, local := splitName(name)
	for _, a := range n.Attr {
		if a.Name.Local == local && a.Name.Space == prefix {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets (or adds) the named attribute.
func SetAttr(n *xmlquery.Node, name, value string) {
	prefix, local := splitName(name)
	for i, a := range n.Attr {
		if a.Name.Local == local && a.Name.Space == prefix {
			n.Attr[i].Value = value
			return
		}
	}
	attr := xmlquery.Attr{Value: value}
	attr.Name.Local = local
	attr.Name.Space = prefix
	n.Attr = append(n.Attr, attr)
}

// SetAttrInt sets the named attribute to a decimal value.
func SetAttrInt(n *xmlquery.Node, name string, value int) {
	SetAttr(n, name, strconv.Itoa(value))
}

// Child returns the first direct child element with the given qualified
// name, or nil.
func Child(n *xmlquery.Node, name string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && NodeName(c) == name {
			return c
		}
	}
	return nil
}

// Children returns all direct child elements with the given qualified name.
func Children(n *xmlquery.Node, name string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && NodeName(c) == name {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns all descendant elements with the given qualified
// name, in document order.
func Descendants(n *xmlquery.Node, name string) []*xmlquery.Node {
	var out []*xmlquery.Node
	var walk func(*xmlquery.Node)
	walk = func(cur *xmlquery.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xmlquery.ElementNode && NodeName(c) == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// AppendChild attaches n as the last child of parent.
func AppendChild(parent, n *xmlquery.Node) {
	n.Parent = parent
	n.NextSibling = nil
	if parent.LastChild == nil {
		parent.FirstChild = n
		parent.LastChild = n
		n.PrevSibling = nil
		return
	}
	n.PrevSibling = parent.LastChild
	parent.LastChild.NextSibling = n
	parent.LastChild = n
}

// PrependChild attaches n as the first child of parent.
func PrependChild(parent, n *xmlquery.Node) {
	n.Parent = parent
	n.PrevSibling = nil
	if parent.FirstChild == nil {
		parent.FirstChild = n
		parent.LastChild = n
		n.NextSibling = nil
		return
	}
	n.NextSibling = parent.FirstChild
	parent.FirstChild.PrevSibling = n
	parent.FirstChild = n
}

// InsertBefore attaches n as the previous sibling of ref.
func InsertBefore(ref, n *xmlquery.Node) {
	n.Parent = ref.Parent
	n.NextSibling = ref
	n.PrevSibling = ref.PrevSibling
	if ref.PrevSibling != nil {
		ref.PrevSibling.NextSibling = n
	} else if ref.Parent != nil {
		ref.Parent.FirstChild = n
	}
	ref.PrevSibling = n
}

// InsertAfter attaches n as the next sibling of ref.
func InsertAfter(ref, n *xmlquery.Node) {
	n.Parent = ref.Parent
	n.PrevSibling = ref
	n.NextSibling = ref.NextSibling
	if ref.NextSibling != nil {
		ref.NextSibling.PrevSibling = n
	} else if ref.Parent != nil {
		ref.Parent.LastChild = n
	}
	ref.NextSibling = n
}

// Detach removes n from its parent.
func Detach(n *xmlquery.Node) {
	if n.Parent == nil {
		return
	}
	if n.Parent.FirstChild == n {
		n.Parent.FirstChild = n.NextSibling
	}
	if n.Parent.LastChild == n {
		n.Parent.LastChild = n.PrevSibling
	}
	if n.PrevSibling != nil {
		n.PrevSibling.NextSibling = n.NextSibling
	}
	if n.NextSibling != nil {
		n.NextSibling.PrevSibling = n.PrevSibling
	}
	n.Parent = nil
	n.PrevSibling = nil
	n.NextSibling = nil
}

// RemoveChildren detaches every direct child element with the given name.
func RemoveChildren(parent *xmlquery.Node, name string) {
	for _, c := range Children(parent, name) {
		Detach(c)
	}
}

// EnsureChild returns the first direct child with the given name, creating
// and appending one if absent.
func EnsureChild(parent *xmlquery.Node, name string) *xmlquery.Node {
	if c := Child(parent, name); c != nil {
		return c
	}
	c := Elem(name)
	AppendChild(parent, c)
	return c
}

// EnsureFirstChild returns the first direct child with the given name,
// creating and prepending one if absent. Used for property containers
// (w:pPr, w:rPr, w:tblPr) that the schema requires in first position.
func EnsureFirstChild(parent *xmlquery.Node, name string) *xmlquery.Node {
	if c := Child(parent, name); c != nil {
		return c
	}
	c := Elem(name)
	PrependChild(parent, c)
	return c
}
