package arity

// Clone returns an independent deep copy of n.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Composition:
		return &Composition{Nodes: cloneAll(n.Nodes), arity: n.arity}
	case *Concatenation:
		return &Concatenation{Nodes: cloneAll(n.Nodes), arity: n.arity}
	case *Branch:
		return &Branch{
			Then:       Clone(n.Then),
			Else:       Clone(n.Else),
			arity:      n.arity,
			unbalanced: n.unbalanced,
		}
	case *WordNode:
		dup := *n
		return &dup
	case *Quotation:
		return &Quotation{Body: Clone(n.Body)}
	}
	// the rest are plain values
	return n
}

func cloneAll(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	dup := make([]Node, len(nodes))
	for i, n := range nodes {
		dup[i] = Clone(n)
	}
	return dup
}
