// Package tree provides a plain binary tree node and builders
// that link nodes together from nested descriptions.
package tree

// Node is one node of a binary tree.
// A nil *Node is the empty tree, and is valid both as a root
// and as either child.
//
// Every node exclusively owns its children: the builders in this
// package only link freshly allocated nodes, so no node is ever
// reachable from two parents. If you link nodes by hand with New,
// don't give the same subtree to two parents.
//
// Node is not safe for concurrent mutation.
type Node[T any] struct {
	Key         T
	Left, Right *Node[T]
}

// New returns a node with key k and the given subtrees.
// Either subtree may be nil.
func New[T any](k T, left, right *Node[T]) *Node[T] {
	return &Node[T]{
		Key:   k,
		Left:  left,
		Right: right,
	}
}

// Leaf returns a node with key k and no children.
func Leaf[T any](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Equal returns true if a and b have the same shape
// and the same key at every position.
// Two empty trees are equal.
func Equal[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Key == b.Key && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}
