// Package dom provides a reference document implementation of the
// xpath.Node capability over XML input. Nodes form a tree with parent
// back-pointers; element nodes additionally carry attribute nodes and
// per-element namespace nodes for the in-scope bindings, as the XPath
// data model requires.
package dom

import (
	"strings"

	xpath "github.com/deadtrickster/plexippus-xpath"
	"github.com/deadtrickster/plexippus-xpath/seq"
)

// Node is a single position in a parsed document. Nodes are always
// handled by pointer; pointer identity is node identity.
type Node struct {
	Type        xpath.Kind
	Parent      *Node
	ParentIndex int

	// Space, Prefix and Local name elements, attributes and
	// processing instructions. Namespace nodes use Prefix for the
	// declared prefix ("" for the default namespace).
	Space  string
	Prefix string
	Local  string

	// Value holds an attribute's value, a text or comment node's
	// content, a processing instruction's data, or a namespace node's
	// URI.
	Value string

	Children   []*Node
	Attrs      []*Node
	Namespaces []*Node
}

func (n *Node) Kind() xpath.Kind {
	return n.Type
}

// Name returns the node's qualified name, or "" for unnamed kinds.
func (n *Node) Name() string {
	switch n.Type {
	case xpath.KindElement, xpath.KindAttribute:
		if n.Prefix != "" {
			return n.Prefix + ":" + n.Local
		}
		return n.Local
	case xpath.KindProcInst:
		return n.Local
	case xpath.KindNamespace:
		return n.Prefix
	}
	return ""
}

// Text returns the node's string-value: for root and element nodes
// the concatenation of all descendant text, for everything else the
// node's own value.
func (n *Node) Text() string {
	switch n.Type {
	case xpath.KindRoot, xpath.KindElement:
		var sb strings.Builder
		n.appendText(&sb)
		return sb.String()
	}
	return n.Value
}

func (n *Node) appendText(sb *strings.Builder) {
	for _, c := range n.Children {
		switch c.Type {
		case xpath.KindText:
			sb.WriteString(c.Value)
		case xpath.KindElement:
			c.appendText(sb)
		}
	}
}

// Root returns the topmost node of n's tree.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks the subtree under n in pre/post order, including
// attribute and namespace nodes. f reports whether to descend on the
// pre visit.
func (n *Node) Visit(f func(n *Node, isPost bool) bool) {
	dive := f(n, false)
	if dive {
		for _, ns := range n.Namespaces {
			ns.Visit(f)
		}
		for _, a := range n.Attrs {
			a.Visit(f)
		}
		for _, c := range n.Children {
			c.Visit(f)
		}
	}
	f(n, true)
}

// nodeSeq returns a lazy sequence over nodes, upcast to the
// capability interface.
func nodeSeq(nodes []*Node) *seq.Seq[xpath.Node] {
	return nodeSeqFrom(nodes, 0)
}

func nodeSeqFrom(nodes []*Node, i int) *seq.Seq[xpath.Node] {
	if i >= len(nodes) {
		return nil
	}
	return seq.New(func() (xpath.Node, *seq.Seq[xpath.Node], bool) {
		return nodes[i], nodeSeqFrom(nodes, i+1), true
	})
}
