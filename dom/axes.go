package dom

import (
	xpath "github.com/deadtrickster/plexippus-xpath"
	"github.com/deadtrickster/plexippus-xpath/debug"
	"github.com/deadtrickster/plexippus-xpath/seq"
)

// Axis returns the nodes related to n along the named axis as a lazy
// sequence. Unknown axis names yield an empty sequence. Repeated calls
// for the same node and axis yield the same node identities: all
// related nodes, namespace nodes included, are stored in the tree, not
// synthesized per call.
func (n *Node) Axis(name string) *seq.Seq[xpath.Node] {
	if debug.Axis() {
		debug.Logf("axis: %s on %s\n", name, n.Path())
	}
	switch name {
	case xpath.AxisSelf:
		return seq.Cons[xpath.Node](n, nil)
	case xpath.AxisParent:
		if n.Parent == nil {
			return nil
		}
		return seq.Cons[xpath.Node](n.Parent, nil)
	case xpath.AxisAncestor:
		return ancestorSeq(n.Parent)
	case xpath.AxisAncestorOrSelf:
		return ancestorSeq(n)
	case xpath.AxisChild:
		return nodeSeq(n.Children)
	case xpath.AxisDescendant:
		return descendantSeq(n.Children, nil)
	case xpath.AxisDescendantOrSelf:
		return descendantOrSelf(n, nil)
	case xpath.AxisAttribute:
		return nodeSeq(n.Attrs)
	case xpath.AxisNamespace:
		return nodeSeq(n.Namespaces)
	case xpath.AxisFollowingSibling:
		if sibs := n.siblings(); sibs != nil {
			return nodeSeq(sibs[n.ParentIndex+1:])
		}
		return nil
	case xpath.AxisPrecedingSibling:
		if sibs := n.siblings(); sibs != nil {
			return reverseSeq(sibs[:n.ParentIndex])
		}
		return nil
	}
	return nil
}

// siblings returns the slice n lives in within its parent, or nil for
// nodes without siblings (roots, attributes, namespace nodes).
func (n *Node) siblings() []*Node {
	if n.Parent == nil {
		return nil
	}
	switch n.Type {
	case xpath.KindAttribute, xpath.KindNamespace:
		return nil
	}
	return n.Parent.Children
}

// ancestorSeq yields n, then its parent chain up to the root.
func ancestorSeq(n *Node) *seq.Seq[xpath.Node] {
	if n == nil {
		return nil
	}
	return seq.New(func() (xpath.Node, *seq.Seq[xpath.Node], bool) {
		return n, ancestorSeq(n.Parent), true
	})
}

// descendantOrSelf yields n and its subtree in pre-order, lazily,
// followed by rest.
func descendantOrSelf(n *Node, rest *seq.Seq[xpath.Node]) *seq.Seq[xpath.Node] {
	return seq.New(func() (xpath.Node, *seq.Seq[xpath.Node], bool) {
		return n, descendantSeq(n.Children, rest), true
	})
}

func descendantSeq(children []*Node, rest *seq.Seq[xpath.Node]) *seq.Seq[xpath.Node] {
	if len(children) == 0 {
		return rest
	}
	return descendantOrSelf(children[0], descendantSeq(children[1:], rest))
}

// reverseSeq yields nodes from the end of the slice backwards, the
// direction of the preceding-sibling axis.
func reverseSeq(nodes []*Node) *seq.Seq[xpath.Node] {
	if len(nodes) == 0 {
		return nil
	}
	i := len(nodes) - 1
	return seq.New(func() (xpath.Node, *seq.Seq[xpath.Node], bool) {
		return nodes[i], reverseSeq(nodes[:i]), true
	})
}
