package xpath

import (
	"math"

	"github.com/deadtrickster/plexippus-xpath/debug"
)

// Op is a comparison operator.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

func (op Op) String() string {
	s, ok := map[Op]string{
		OpEqual:        "=",
		OpNotEqual:     "!=",
		OpLess:         "<",
		OpLessEqual:    "<=",
		OpGreater:      ">",
		OpGreaterEqual: ">=",
	}[op]
	if ok {
		return s
	}
	return "<unknown op>"
}

// swapped returns the operator for the comparison with operands
// exchanged, preserving the relation direction.
func (op Op) swapped() Op {
	switch op {
	case OpLess:
		return OpGreater
	case OpLessEqual:
		return OpGreaterEqual
	case OpGreater:
		return OpLess
	case OpGreaterEqual:
		return OpLessEqual
	}
	return op
}

// Compare applies op to two values of the value union. Node-set
// operands compare existentially: the result is true iff some element
// (or some pair of elements, for two node-sets) satisfies the
// comparison. Note that with node-sets OpNotEqual is not the negation
// of OpEqual, and any NaN operand makes a numeric comparison false.
func Compare(op Op, a, b any) (bool, error) {
	if debug.Compare() {
		debug.Logf("compare: %T %s %T\n", a, op, b)
	}
	as, aSet := a.(*NodeSet)
	bs, bSet := b.(*NodeSet)
	switch {
	case aSet && bSet:
		return compareSets(op, as, bs)
	case aSet:
		return compareSetScalar(op, as, b)
	case bSet:
		return compareSetScalar(op.swapped(), bs, a)
	}
	return compareScalars(op, a, b)
}

// compareSets: equality ops compare textual values pairwise, the
// relational ops numeric values, each existentially with early exit.
func compareSets(op Op, a, b *NodeSet) (bool, error) {
	res := false
	a.Seq().Enumerate(func(na Node) bool {
		ta := na.Text()
		b.Seq().Enumerate(func(nb Node) bool {
			tb := nb.Text()
			var ok bool
			switch op {
			case OpEqual:
				ok = ta == tb
			case OpNotEqual:
				ok = ta != tb
			default:
				ok = numRel(op, ParseNumber(ta), ParseNumber(tb))
			}
			if ok {
				res = true
			}
			return !res
		})
		return !res
	})
	return res, nil
}

// compareSetScalar: true iff some node, compared as a scalar against
// v, satisfies op.
func compareSetScalar(op Op, ns *NodeSet, v any) (bool, error) {
	res := false
	var resErr error
	ns.Seq().Enumerate(func(n Node) bool {
		ok, err := compareScalars(op, n, v)
		if err != nil {
			resErr = err
			return false
		}
		if ok {
			res = true
		}
		return !res
	})
	return res, resErr
}

// compareScalars implements the no-node-set rule: relational ops and
// any numeric operand force numeric comparison; otherwise a boolean
// operand forces boolean equality; otherwise exact string equality.
// A raw node participates as its text.
func compareScalars(op Op, a, b any) (bool, error) {
	_, aNum := a.(float64)
	_, bNum := b.(float64)
	if (op != OpEqual && op != OpNotEqual) || aNum || bNum {
		na, err := NumberValue(a)
		if err != nil {
			return false, err
		}
		nb, err := NumberValue(b)
		if err != nil {
			return false, err
		}
		return numRel(op, na, nb), nil
	}
	_, aBool := a.(bool)
	_, bBool := b.(bool)
	if aBool || bBool {
		return (BooleanValue(a) == BooleanValue(b)) == (op == OpEqual), nil
	}
	sa, err := StringValue(a)
	if err != nil {
		return false, err
	}
	sb, err := StringValue(b)
	if err != nil {
		return false, err
	}
	return (sa == sb) == (op == OpEqual), nil
}

// numRel applies op numerically. NaN on either side is false for
// every operator, OpNotEqual included.
func numRel(op Op, a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	switch op {
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	case OpLess:
		return a < b
	case OpLessEqual:
		return a <= b
	case OpGreater:
		return a > b
	case OpGreaterEqual:
		return a >= b
	}
	return false
}
