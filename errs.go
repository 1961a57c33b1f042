package xpath

import "errors"

var (
	// ErrConversion reports a value that cannot be converted to a
	// node-set.
	ErrConversion = errors.New("cannot convert value to node-set")

	// ErrUndefinedOrder reports a document-order comparison between
	// nodes whose ancestor chains never converge, i.e. nodes from
	// disjoint trees. Cross-document order has no defined meaning.
	ErrUndefinedOrder = errors.New("no common document for node ordering")
)
