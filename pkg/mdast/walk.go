package mdast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree rooted at n. If fn
// returns a non-nil error, the walk stops immediately and returns that
// error.
func Walk(n *Node, fn WalkFunc) error {
	if n == nil {
		return nil
	}
	if err := fn(n); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkDocument walks every top-level block of doc in order.
func WalkDocument(doc *Document, fn WalkFunc) error {
	for _, child := range doc.Children {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}
