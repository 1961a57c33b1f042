package xpath

import (
	"slices"

	"github.com/deadtrickster/plexippus-xpath/seq"
)

// Order describes what the element order of a node-set's underlying
// sequence means. It is a description, not an obligation: sorting
// happens only on demand.
type Order int

const (
	Unordered Order = iota
	DocumentOrder
	ReverseDocumentOrder
)

func (o Order) String() string {
	s, ok := map[Order]string{
		Unordered:            "unordered",
		DocumentOrder:        "document-order",
		ReverseDocumentOrder: "reverse-document-order",
	}[o]
	if ok {
		return s
	}
	return "<unknown order>"
}

// NodeSet is a set of unique node identities over a lazy sequence.
// Construction wraps the sequence in a deduplicating filter keyed by
// node identity, so duplicates cost only as much of the sequence as a
// consumer actually walks.
type NodeSet struct {
	seq   *seq.Seq[Node]
	order Order
}

// NewNodeSet builds a node-set over s with the given order tag.
// Elements with a previously seen identity are dropped; first
// occurrences pass through in their original relative order.
func NewNodeSet(s *seq.Seq[Node], order Order) *NodeSet {
	seen := make(map[Node]struct{})
	uniq := s.Filter(func(n Node) bool {
		if _, ok := seen[n]; ok {
			return false
		}
		seen[n] = struct{}{}
		return true
	})
	return &NodeSet{seq: uniq, order: order}
}

// Singleton returns a one-element document-ordered node-set.
func Singleton(n Node) *NodeSet {
	return &NodeSet{seq: seq.Cons(n, nil), order: DocumentOrder}
}

// Seq returns the deduplicated underlying sequence.
func (ns *NodeSet) Seq() *seq.Seq[Node] {
	return ns.seq
}

// Order returns the node-set's order tag.
func (ns *NodeSet) Order() Order {
	return ns.order
}

// IsEmpty reports whether the node-set has no elements. It forces at
// most one element of the underlying sequence.
func (ns *NodeSet) IsEmpty() bool {
	return ns.seq.IsEmpty()
}

// SortedView returns the nodes in document order. A DocumentOrder set
// is returned as-is (the tag is the caller's guarantee that it already
// is sorted); a ReverseDocumentOrder set is forced and reversed; an
// Unordered set is forced and sorted with the document-order
// comparator.
func (ns *NodeSet) SortedView() ([]Node, error) {
	switch ns.order {
	case DocumentOrder:
		return ns.seq.Force(), nil
	case ReverseDocumentOrder:
		nodes := ns.seq.Force()
		slices.Reverse(nodes)
		return nodes, nil
	default:
		nodes := ns.seq.Force()
		if err := SortDocument(nodes); err != nil {
			return nil, err
		}
		return nodes, nil
	}
}

// FirstInDocument returns the node whose text stands for the node-set
// when it degenerates to a string, or nil for an empty set. For a
// DocumentOrder set this is the head; for ReverseDocumentOrder the
// last element; for Unordered the minimum under the document-order
// comparator, found in a single linear scan.
func (ns *NodeSet) FirstInDocument() (Node, error) {
	switch ns.order {
	case DocumentOrder:
		n, _ := ns.seq.Head()
		return n, nil
	case ReverseDocumentOrder:
		var last Node
		for n := range ns.seq.All() {
			last = n
		}
		return last, nil
	default:
		var best Node
		for n := range ns.seq.All() {
			if best == nil {
				best = n
				continue
			}
			lt, err := Before(n, best)
			if err != nil {
				return nil, err
			}
			if lt {
				best = n
			}
		}
		return best, nil
	}
}
