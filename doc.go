// Package xpath implements the value model and node-ordering core of
// an XPath 1.0 style evaluator: node-sets, the document-order
// comparator, cross-type value coercion, the comparison engine, and
// the per-step evaluation context.
//
// # Values
//
// A value is one of five kinds: a Node (any type implementing the
// Node capability interface), a *NodeSet, a float64, a string, or a
// bool. The coercions BooleanValue, NumberValue, StringValue and
// ToNodeSet map any value to canonical form; Compare implements the
// full equality/relational dispatch across value kinds, including the
// existential semantics of node-set comparison.
//
// # Nodes and documents
//
// The package never owns or constructs document nodes. It consumes
// them through the Node interface: a kind tag, text extraction, and
// axis lookup returning lazy sequences (package seq). Node equality is
// always identity. Package dom provides a reference implementation
// over XML documents.
//
// # Document order
//
// Before(a, b) is a strict total order over the nodes of one document,
// consistent with pre-order traversal, namespace nodes before
// attribute nodes before children of the same element. Nodes of
// disjoint documents have no defined order; comparing them reports
// ErrUndefinedOrder rather than inventing one.
package xpath
