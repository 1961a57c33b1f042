package xpath_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	xpath "github.com/deadtrickster/plexippus-xpath"
	"github.com/deadtrickster/plexippus-xpath/seq"
)

func TestNodeSet_Deduplicates(t *testing.T) {
	nodes := preOrder(mustParse(t, libraryXML))
	withDups := append(append([]xpath.Node{}, nodes...), nodes[3], nodes[0], nodes[7])
	set := xpath.NewNodeSet(seq.FromSlice(withDups), xpath.DocumentOrder)
	got := set.Seq().Force()
	if d := cmp.Diff(paths(nodes), paths(got)); d != "" {
		t.Errorf("dedup lost first-occurrence order (-want +got):\n%s", d)
	}
}

func TestNodeSet_DedupIsLazy(t *testing.T) {
	nodes := preOrder(mustParse(t, libraryXML))
	produced := 0
	var from func(i int) *seq.Seq[xpath.Node]
	from = func(i int) *seq.Seq[xpath.Node] {
		if i >= len(nodes) {
			return nil
		}
		return seq.New(func() (xpath.Node, *seq.Seq[xpath.Node], bool) {
			produced++
			return nodes[i], from(i + 1), true
		})
	}
	set := xpath.NewNodeSet(from(0), xpath.Unordered)
	require.False(t, set.IsEmpty())
	require.Equal(t, 1, produced, "IsEmpty should force one element")
}

func TestNodeSet_IsEmpty(t *testing.T) {
	require.True(t, xpath.NewNodeSet(seq.Empty[xpath.Node](), xpath.Unordered).IsEmpty())
	n := mustParse(t, `<a/>`).Children[0]
	require.False(t, xpath.Singleton(n).IsEmpty())
}

func TestNodeSet_SortedView(t *testing.T) {
	nodes := preOrder(mustParse(t, libraryXML))
	reversed := make([]xpath.Node, len(nodes))
	for i, n := range nodes {
		reversed[len(nodes)-1-i] = n
	}

	t.Run("document order passes through", func(t *testing.T) {
		// the tag is trusted: even a lying sequence is not re-sorted
		set := xpath.NewNodeSet(seq.FromSlice(reversed), xpath.DocumentOrder)
		got, err := set.SortedView()
		require.NoError(t, err)
		require.Equal(t, paths(reversed), paths(got))
	})
	t.Run("reverse document order reverses", func(t *testing.T) {
		set := xpath.NewNodeSet(seq.FromSlice(reversed), xpath.ReverseDocumentOrder)
		got, err := set.SortedView()
		require.NoError(t, err)
		require.Equal(t, paths(nodes), paths(got))
	})
	t.Run("unordered sorts", func(t *testing.T) {
		set := xpath.NewNodeSet(seq.FromSlice(reversed), xpath.Unordered)
		got, err := set.SortedView()
		require.NoError(t, err)
		require.Equal(t, paths(nodes), paths(got))
	})
}

func TestNodeSet_FirstInDocument(t *testing.T) {
	nodes := preOrder(mustParse(t, libraryXML))
	subset := []xpath.Node{nodes[9], nodes[4], nodes[12], nodes[7]}
	minNode := nodes[4]

	t.Run("document order takes head", func(t *testing.T) {
		set := xpath.NewNodeSet(seq.FromSlice(subset), xpath.DocumentOrder)
		got, err := set.FirstInDocument()
		require.NoError(t, err)
		require.Same(t, subset[0], got)
	})
	t.Run("reverse document order takes last", func(t *testing.T) {
		set := xpath.NewNodeSet(seq.FromSlice(subset), xpath.ReverseDocumentOrder)
		got, err := set.FirstInDocument()
		require.NoError(t, err)
		require.Same(t, subset[len(subset)-1], got)
	})
	t.Run("unordered takes comparator minimum", func(t *testing.T) {
		set := xpath.NewNodeSet(seq.FromSlice(subset), xpath.Unordered)
		got, err := set.FirstInDocument()
		require.NoError(t, err)
		require.Same(t, minNode, got)
	})
	t.Run("empty set", func(t *testing.T) {
		set := xpath.NewNodeSet(seq.Empty[xpath.Node](), xpath.Unordered)
		got, err := set.FirstInDocument()
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestSingleton(t *testing.T) {
	n := mustParse(t, `<a>hello</a>`).Children[0]
	set := xpath.Singleton(n)
	require.Equal(t, xpath.DocumentOrder, set.Order())
	got := set.Seq().Force()
	require.Len(t, got, 1)
	require.Same(t, n, got[0])
}

func TestNodeSet_FirstInDocument_Agreement(t *testing.T) {
	// the unordered minimum must agree with the head of the sorted view
	nodes := preOrder(mustParse(t, libraryXML))
	subset := []xpath.Node{nodes[17], nodes[3], nodes[11], nodes[5]}
	set := xpath.NewNodeSet(seq.FromSlice(subset), xpath.Unordered)
	first, err := set.FirstInDocument()
	require.NoError(t, err)
	sorted, err := set.SortedView()
	require.NoError(t, err)
	require.Same(t, sorted[0], first)
}
