package xpath

import (
	"fmt"
	"slices"

	"github.com/deadtrickster/plexippus-xpath/debug"
	"github.com/deadtrickster/plexippus-xpath/seq"
)

// Before reports whether a strictly precedes b in document order:
// pre-order traversal order, with an element's namespace nodes before
// its attribute nodes before its children. Comparing nodes from
// disjoint trees returns ErrUndefinedOrder.
func Before(a, b Node) (bool, error) {
	chainA := a.Axis(AxisAncestorOrSelf).Force()
	chainB := b.Axis(AxisAncestorOrSelf).Force()
	n := min(len(chainA), len(chainB))
	// Align both chains by depth from the root: drop the node-most
	// entries of the longer chain.
	chainA = chainA[len(chainA)-n:]
	chainB = chainB[len(chainB)-n:]
	if chainA[0] == b {
		// b is a itself or an ancestor of a.
		return false, nil
	}
	if chainB[0] == a {
		return true, nil
	}
	for i := 0; i+1 < n; i++ {
		if chainA[i+1] != chainB[i+1] {
			continue
		}
		// chainA[i+1] is the lowest common ancestor; chainA[i] and
		// chainB[i] are the divergent children leading toward a and b.
		if debug.Order() {
			debug.Logf("order: common ancestor at depth %d for %s/%s\n",
				i+1, chainA[i].Kind(), chainB[i].Kind())
		}
		return siblingBefore(chainA[i+1], chainA[i], chainB[i])
	}
	return false, fmt.Errorf("%w: %s vs %s", ErrUndefinedOrder, a.Kind(), b.Kind())
}

// siblingBefore orders two distinct nodes p and q under their common
// parent. Namespace nodes precede attribute nodes precede regular
// children; within the namespace and attribute groups the parent's
// axis enumeration order decides, and regular children are ordered by
// the following-sibling axis.
func siblingBefore(parent, p, q Node) (bool, error) {
	pNS, qNS := p.Kind() == KindNamespace, q.Kind() == KindNamespace
	pAttr, qAttr := p.Kind() == KindAttribute, q.Kind() == KindAttribute
	switch {
	case pNS && qAttr:
		return true, nil
	case pAttr && qNS:
		return false, nil
	case pNS && qNS:
		return firstOf(parent.Axis(AxisNamespace), p, q), nil
	case pAttr && qAttr:
		return firstOf(parent.Axis(AxisAttribute), p, q), nil
	case pNS || pAttr:
		return true, nil
	case qNS || qAttr:
		return false, nil
	}
	res := false
	p.Axis(AxisFollowingSibling).Enumerate(func(n Node) bool {
		if n == q {
			res = true
			return false
		}
		return true
	})
	return res, nil
}

// firstOf reports whether p is encountered before q along s.
func firstOf(s *seq.Seq[Node], p, q Node) bool {
	res := false
	s.Enumerate(func(n Node) bool {
		switch n {
		case p:
			res = true
			return false
		case q:
			return false
		}
		return true
	})
	return res
}

// SortDocument sorts nodes in place into document order. The first
// undefined-order comparison aborts the sort with ErrUndefinedOrder;
// the slice contents are unspecified in that case.
func SortDocument(nodes []Node) error {
	var err error
	slices.SortFunc(nodes, func(a, b Node) int {
		if a == b || err != nil {
			return 0
		}
		lt, e := Before(a, b)
		if e != nil {
			err = e
			return 0
		}
		if lt {
			return -1
		}
		return 1
	})
	return err
}
