package xpath

import (
	"github.com/deadtrickster/plexippus-xpath/seq"
)

// Kind identifies what a node represents in its document.
type Kind int

const (
	KindRoot Kind = iota
	KindElement
	KindAttribute
	KindNamespace
	KindText
	KindComment
	KindProcInst
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindRoot:      "root",
		KindElement:   "element",
		KindAttribute: "attribute",
		KindNamespace: "namespace",
		KindText:      "text",
		KindComment:   "comment",
		KindProcInst:  "processing-instruction",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Axis names understood by Node implementations. The core itself
// consumes AxisAncestorOrSelf, AxisAttribute, AxisNamespace and
// AxisFollowingSibling; the rest are part of the usual axis vocabulary
// document implementations provide.
const (
	AxisSelf             = "self"
	AxisParent           = "parent"
	AxisChild            = "child"
	AxisAncestor         = "ancestor"
	AxisAncestorOrSelf   = "ancestor-or-self"
	AxisDescendant       = "descendant"
	AxisDescendantOrSelf = "descendant-or-self"
	AxisAttribute        = "attribute"
	AxisNamespace        = "namespace"
	AxisFollowingSibling = "following-sibling"
	AxisPrecedingSibling = "preceding-sibling"
)

// Node is the capability the core requires from a concrete document
// node. Implementations must be pointer-shaped so that == on the
// interface is identity: the core never compares nodes structurally.
//
// Axis returns the nodes related to the receiver along the named axis
// as a lazy sequence, or an empty sequence for an axis the
// implementation does not know. Sequences returned for the same
// (node, axis) pair must yield identical node identities on every
// call.
type Node interface {
	Kind() Kind
	Text() string
	Axis(name string) *seq.Seq[Node]
}

// IsNode reports whether v is a node value.
func IsNode(v any) bool {
	_, ok := v.(Node)
	return ok
}
