package i18n

import "strings"

// Node is one position in a translation tree: either a leaf string or a
// subtree keyed by path segment. The two shapes are mutually exclusive, so
// a lookup that lands on an interior node is a miss, not a partial hit.
type Node struct {
	leaf     string
	isLeaf   bool
	children map[string]*Node
}

// Leaf builds a terminal node holding a translated string.
func Leaf(s string) *Node {
	return &Node{leaf: s, isLeaf: true}
}

// Tree builds an interior node from its children.
func Tree(children map[string]*Node) *Node {
	return &Node{children: children}
}

// Lookup walks dottedKey one segment at a time. It returns ok only when the
// full path lands exactly on a leaf.
func (n *Node) Lookup(dottedKey string) (string, bool) {
	cur := n
	for _, seg := range strings.Split(dottedKey, ".") {
		if cur == nil || cur.isLeaf {
			return "", false
		}
		next, ok := cur.children[seg]
		if !ok {
			return "", false
		}
		cur = next
	}
	if cur == nil || !cur.isLeaf {
		return "", false
	}
	return cur.leaf, true
}
