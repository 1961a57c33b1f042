package dom

import (
	"fmt"

	xpath "github.com/deadtrickster/plexippus-xpath"
)

// Path returns a location string for the node's position in its tree,
// for diagnostics and listings. Element and text steps carry a 1-based
// position among their siblings.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "/"
	}
	prefix := n.Parent.Path()
	if prefix != "/" {
		prefix += "/"
	}
	switch n.Type {
	case xpath.KindElement:
		return fmt.Sprintf("%s%s[%d]", prefix, n.Name(), n.position())
	case xpath.KindAttribute:
		return prefix + "@" + n.Name()
	case xpath.KindNamespace:
		if n.Prefix == "" {
			return prefix + "namespace::*default*"
		}
		return prefix + "namespace::" + n.Prefix
	case xpath.KindText:
		return fmt.Sprintf("%stext()[%d]", prefix, n.position())
	case xpath.KindComment:
		return fmt.Sprintf("%scomment()[%d]", prefix, n.position())
	case xpath.KindProcInst:
		return fmt.Sprintf("%sprocessing-instruction(%s)[%d]", prefix, n.Local, n.position())
	default:
		panic("node kind")
	}
}

// position is the 1-based index of n among its parent's children of
// the same kind (and, for elements, the same name).
func (n *Node) position() int {
	pos := 1
	for _, sib := range n.Parent.Children[:n.ParentIndex] {
		if sib.Type != n.Type {
			continue
		}
		if n.Type == xpath.KindElement && sib.Name() != n.Name() {
			continue
		}
		pos++
	}
	return pos
}
