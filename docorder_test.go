package xpath_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	xpath "github.com/deadtrickster/plexippus-xpath"
	"github.com/deadtrickster/plexippus-xpath/dom"
)

const libraryXML = `<library xmlns:loc="http://example.org/loc"><book id="b1" loc:shelf="A"><title>Dune</title><author>Herbert</author></book><book id="b2"><title>Solaris</title></book><!-- end --></library>`

func mustParse(t *testing.T, doc string) *dom.Node {
	t.Helper()
	root, err := dom.ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return root
}

// preOrder returns every node of the tree, namespace and attribute
// nodes included, in document order.
func preOrder(root *dom.Node) []xpath.Node {
	var res []xpath.Node
	root.Visit(func(n *dom.Node, isPost bool) bool {
		if !isPost {
			res = append(res, n)
		}
		return true
	})
	return res
}

func paths(nodes []xpath.Node) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = n.(*dom.Node).Path()
	}
	return res
}

func mustBefore(t *testing.T, a, b xpath.Node) bool {
	t.Helper()
	lt, err := xpath.Before(a, b)
	require.NoError(t, err)
	return lt
}

func TestBefore_StrictTotalOrder(t *testing.T) {
	nodes := preOrder(mustParse(t, libraryXML))
	for i, a := range nodes {
		require.False(t, mustBefore(t, a, a), "irreflexive: %s", paths(nodes)[i])
		for j, b := range nodes {
			lt := mustBefore(t, a, b)
			gt := mustBefore(t, b, a)
			if i == j {
				continue
			}
			require.NotEqual(t, lt, gt, "exactly one of a<b, b<a for %s vs %s",
				paths(nodes)[i], paths(nodes)[j])
			// document order is pre-order with namespaces, then
			// attributes, then children
			require.Equal(t, i < j, lt, "%s vs %s", paths(nodes)[i], paths(nodes)[j])
		}
	}
}

func TestBefore_Transitive(t *testing.T) {
	nodes := preOrder(mustParse(t, libraryXML))
	for _, a := range nodes {
		for _, b := range nodes {
			if !mustBefore(t, a, b) {
				continue
			}
			for _, c := range nodes {
				if mustBefore(t, b, c) && !mustBefore(t, a, c) {
					t.Fatalf("transitivity violated: %s < %s < %s",
						a.(*dom.Node).Path(), b.(*dom.Node).Path(), c.(*dom.Node).Path())
				}
			}
		}
	}
}

func TestSortDocument_ReproducesPreOrder(t *testing.T) {
	nodes := preOrder(mustParse(t, libraryXML))
	want := paths(nodes)

	shuffled := make([]xpath.Node, len(nodes))
	copy(shuffled, nodes)
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	require.NoError(t, xpath.SortDocument(shuffled))
	if d := cmp.Diff(want, paths(shuffled)); d != "" {
		t.Errorf("sorted order differs from pre-order (-want +got):\n%s", d)
	}
}

func TestBefore_NamespaceAttributeChildren(t *testing.T) {
	root := mustParse(t, libraryXML)
	b1 := root.Children[0].Children[0]
	ns := b1.Namespaces[0]
	attr := b1.Attrs[0]
	child := b1.Children[0]

	require.True(t, mustBefore(t, ns, attr), "namespace before attribute")
	require.True(t, mustBefore(t, attr, child), "attribute before child")
	require.True(t, mustBefore(t, ns, child), "namespace before child")
	require.False(t, mustBefore(t, child, ns))
	require.True(t, mustBefore(t, b1.Attrs[0], b1.Attrs[1]), "attribute axis order")
	require.True(t, mustBefore(t, b1.Namespaces[0], b1.Namespaces[1]), "namespace axis order")
}

func TestBefore_AncestorPrecedesDescendant(t *testing.T) {
	root := mustParse(t, libraryXML)
	title := root.Children[0].Children[0].Children[0]
	require.True(t, mustBefore(t, root, title))
	require.False(t, mustBefore(t, title, root))
}

func TestBefore_DisjointTrees(t *testing.T) {
	a := mustParse(t, `<a/>`).Children[0]
	b := mustParse(t, `<b/>`).Children[0]
	_, err := xpath.Before(a, b)
	require.ErrorIs(t, err, xpath.ErrUndefinedOrder)

	nodes := []xpath.Node{a, b}
	require.ErrorIs(t, xpath.SortDocument(nodes), xpath.ErrUndefinedOrder)
}
