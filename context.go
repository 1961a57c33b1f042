package xpath

// Context is the per-step evaluation context: the current node, its
// 1-based position among the candidate nodes, the candidate count, and
// the node evaluation started from. The exported fields are mutated in
// place by evaluators reusing one context across a run of siblings; a
// Context must not be shared across concurrent evaluation steps.
//
// The size may be supplied as a deferred computation; it resolves on
// first read and the resolved value is cached for all later reads.
type Context struct {
	Node     Node
	Starting Node
	Position int

	size sizeCell
}

// sizeCell is a two-state cell: pending (fn set) or resolved (value
// cached).
type sizeCell struct {
	resolved bool
	value    int
	fn       func() int
}

// NewContext returns a context with a fixed size.
func NewContext(node, starting Node, position, size int) *Context {
	return &Context{
		Node:     node,
		Starting: starting,
		Position: position,
		size:     sizeCell{resolved: true, value: size},
	}
}

// NewLazySizeContext returns a context whose size is computed by fn on
// first read.
func NewLazySizeContext(node, starting Node, position int, fn func() int) *Context {
	return &Context{
		Node:     node,
		Starting: starting,
		Position: position,
		size:     sizeCell{fn: fn},
	}
}

// Size returns the candidate count, resolving a pending computation
// exactly once.
func (c *Context) Size() int {
	if !c.size.resolved {
		if c.size.fn != nil {
			c.size.value = c.size.fn()
			c.size.fn = nil
		}
		c.size.resolved = true
	}
	return c.size.value
}

// SetSize replaces the size with a fixed value.
func (c *Context) SetSize(n int) {
	c.size = sizeCell{resolved: true, value: n}
}

// SetLazySize replaces the size with a pending computation.
func (c *Context) SetLazySize(fn func() int) {
	c.size = sizeCell{fn: fn}
}

// Clone returns an independent copy for evaluation branch points. A
// pending size computation is shared; each copy still resolves it at
// most once for itself.
func (c *Context) Clone() *Context {
	cp := *c
	return &cp
}
