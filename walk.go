package huffman

import (
	"fmt"
)

// walk visits every node of the tree rooted at n in depth-first pre-order,
// left before right.  The visitor receives the node and the path of edge
// bits ('0' or '1') leading to it from n.  The path buffer is reused between
// calls; visitors that keep it must copy it.
//
// The walk uses an explicit stack, so arbitrarily skewed trees are fine.  A
// node with exactly one child aborts the walk with ErrMalformedTree.
//
func (n *Node) walk(visit func(node *Node, path []byte)) error {
	if n == nil {
		return fmt.Errorf("%w: nil tree", ErrEmptyInput)
	}

	// We use stackItem.x to keep track of where we are in the walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path always holds exactly one bit per internal node on the stack
	// below the top.

	type stackItem struct {
		node *Node
		x    byte
	}

	capHint := log2uint(uint(n.freq)) + 1
	stack := make([]stackItem, 0, capHint)
	path := make([]byte, 0, capHint)

	stack = append(stack, stackItem{node: n})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		node := top.node
		x := top.x
		top.x++
		switch x {
		case 0:
			if (node.left == nil) != (node.right == nil) {
				return fmt.Errorf("%w: node %v at path %q has exactly one child", ErrMalformedTree, node, path)
			}
			visit(node, path)
			if node.IsLeaf() {
				stack = stack[:len(stack)-1]
				continue
			}
			path = append(path, '0')
			stack = append(stack, stackItem{node: node.left})
		case 1:
			path[len(path)-1] = '1'
			stack = append(stack, stackItem{node: node.right})
		case 2:
			path = path[:len(path)-1]
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}
