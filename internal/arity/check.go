package arity

import "fmt"

// UnbalancedError reports a branch whose arms have different net effects.
type UnbalancedError struct {
	Then, Else Arity
}

func (err UnbalancedError) Error() string {
	return fmt.Sprintf("unbalanced branch: %v vs %v", err.Then, err.Else)
}

// Walk calls fn for n and every node beneath it, including the bodies of
// quotations, in depth-first order. It stops at the first non-nil error.
func Walk(n Node, fn func(Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	switch n := n.(type) {
	case *Composition:
		return walkAll(n.Nodes, fn)
	case *Concatenation:
		return walkAll(n.Nodes, fn)
	case *Branch:
		if err := Walk(n.Then, fn); err != nil {
			return err
		}
		return Walk(n.Else, fn)
	case *Quotation:
		return Walk(n.Body, fn)
	}
	return nil
}

func walkAll(nodes []Node, fn func(Node) error) error {
	for _, n := range nodes {
		if err := Walk(n, fn); err != nil {
			return err
		}
	}
	return nil
}

// Check returns an UnbalancedError for the first unbalanced branch in n,
// quoted or not.
func Check(n Node) error {
	return Walk(n, func(n Node) error {
		if br, ok := n.(*Branch); ok && !br.Balanced() {
			return UnbalancedError{br.Then.Arity(), br.Else.Arity()}
		}
		return nil
	})
}
