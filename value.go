package xpath

import (
	"fmt"
	"math"
)

// A value is one of: Node, *NodeSet, float64, string, bool. The
// coercions below dispatch on that union; any other type is a caller
// contract violation and panics. A raw node coerces through its text,
// f(node) = f(text(node)).

// BooleanValue coerces v to a boolean: non-empty for strings, neither
// NaN nor zero for numbers, non-empty for node-sets.
func BooleanValue(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return !math.IsNaN(x) && x != 0
	case string:
		return x != ""
	case *NodeSet:
		return !x.IsEmpty()
	case Node:
		return x.Text() != ""
	}
	panic(fmt.Sprintf("xpath: value type %T", v))
}

// NumberValue coerces v to a number. Strings parse per the XPath
// numeric grammar, yielding NaN rather than an error on non-numeric
// input; node-sets coerce through their string value. The error is
// non-nil only when a node-set's string value is undefined
// (ErrUndefinedOrder).
func NumberValue(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		return ParseNumber(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case *NodeSet:
		s, err := StringValue(x)
		if err != nil {
			return 0, err
		}
		return ParseNumber(s), nil
	case Node:
		return ParseNumber(x.Text()), nil
	}
	panic(fmt.Sprintf("xpath: value type %T", v))
}

// StringValue coerces v to a string. An empty node-set is ""; a
// non-empty one is the text of its textually first node, which for an
// Unordered set requires document-order comparisons and can fail with
// ErrUndefinedOrder.
func StringValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return FormatNumber(x), nil
	case bool:
		if x {
			return "true", nil
		}
		return "false", nil
	case *NodeSet:
		n, err := x.FirstInDocument()
		if err != nil {
			return "", err
		}
		if n == nil {
			return "", nil
		}
		return n.Text(), nil
	case Node:
		return x.Text(), nil
	}
	panic(fmt.Sprintf("xpath: value type %T", v))
}

// ToNodeSet returns v as a node-set: node-sets unchanged, a single
// node as a one-element document-ordered set. Any other value fails
// with ErrConversion.
func ToNodeSet(v any) (*NodeSet, error) {
	switch x := v.(type) {
	case *NodeSet:
		return x, nil
	case Node:
		return Singleton(x), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrConversion, v)
}
