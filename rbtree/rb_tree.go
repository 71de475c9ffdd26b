package rbtree

import (
	"golang.org/x/exp/constraints"

	"maple/memory"
)

type color uint8

const (
	red   color = 0
	black color = 1
)

// Node is a tree position holding one key. Nodes are owned by their
// tree; references returned from Find, Min, Max, and friends observe
// the tree and become invalid once the node is erased or the tree is
// cleared.
type Node[K constraints.Ordered] struct {
	key    K
	color  color
	left   *Node[K]
	right  *Node[K]
	parent *Node[K]
}

// Key reports the key stored at this position.
func (n *Node[K]) Key() K { return n.key }

// nodePool abstracts where nodes come from: memory.Pool for unbounded
// trees, memory.FixedPool for arena-backed ones.
type nodePool[K constraints.Ordered] interface {
	Get() *Node[K]
	Put(*Node[K])
}

type Tree[K constraints.Ordered] struct {
	root *Node[K]
	nil  *Node[K] // sentinel (black, shared by every absent child)
	pool nodePool[K]
	size int
}

// New constructs an empty tree whose nodes are drawn from an
// unbounded recycling pool. Insert on such a tree cannot fail.
func New[K constraints.Ordered]() *Tree[K] {
	return newTree[K](memory.NewPool(func() *Node[K] { return new(Node[K]) }))
}

// NewFixed constructs an empty tree over a preallocated arena of
// capacity nodes. Once the arena is exhausted Insert returns nil
// until an Erase or Clear returns nodes to it.
func NewFixed[K constraints.Ordered](capacity int) *Tree[K] {
	return newTree[K](memory.NewFixedPool[Node[K]](capacity))
}

func newTree[K constraints.Ordered](pool nodePool[K]) *Tree[K] {
	s := &Node[K]{color: black}
	s.parent, s.left, s.right = s, s, s
	return &Tree[K]{root: s, nil: s, pool: pool}
}

// Size reports the number of keys currently stored.
func (t *Tree[K]) Size() int { return t.size }

// Insert adds key to the tree and returns the tree's root after
// rebalancing (not the inserted node; the root may have changed).
// Equal keys descend right, so duplicates are kept and preserve
// insertion order. On an arena-backed tree that has run out of nodes
// Insert returns nil and the tree is left unmodified.
func (t *Tree[K]) Insert(key K) *Node[K] {
	z := t.pool.Get()
	if z == nil {
		return nil
	}
	*z = Node[K]{key: key, color: red, left: t.nil, right: t.nil, parent: t.nil}

	y := t.nil
	x := t.root
	for x != t.nil {
		y = x
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.parent = y
	if y == t.nil {
		t.root = z
	} else if key < y.key {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
	t.size++
	return t.root
}

// Find returns a node holding key, or nil if the key is absent. With
// duplicates present, which of the equal nodes is returned is
// unspecified.
func (t *Tree[K]) Find(key K) *Node[K] {
	n := t.root
	for n != t.nil {
		if key < n.key {
			n = n.left
		} else if key > n.key {
			n = n.right
		} else {
			return n
		}
	}
	return nil
}

// Min returns the node with the smallest key, or nil on an empty tree.
func (t *Tree[K]) Min() *Node[K] {
	n := t.minNode(t.root)
	if n == t.nil {
		return nil
	}
	return n
}

// Max returns the node with the largest key, or nil on an empty tree.
func (t *Tree[K]) Max() *Node[K] {
	n := t.maxNode(t.root)
	if n == t.nil {
		return nil
	}
	return n
}

// Successor returns the node with the smallest key strictly greater
// than key, or nil if no such key exists.
func (t *Tree[K]) Successor(key K) *Node[K] {
	n := t.root
	succ := t.nil
	for n != t.nil {
		if key < n.key {
			succ = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if succ == t.nil {
		return nil
	}
	return succ
}

// Predecessor returns the node with the largest key strictly smaller
// than key, or nil if no such key exists.
func (t *Tree[K]) Predecessor(key K) *Node[K] {
	n := t.root
	pred := t.nil
	for n != t.nil {
		if key > n.key {
			pred = n
			n = n.right
		} else {
			n = n.left
		}
	}
	if pred == t.nil {
		return nil
	}
	return pred
}

// Erase removes z from the tree, rebalances, and returns z's memory
// to the pool. It returns false only for a nil argument. z must be a
// live node of this tree; passing a node from another tree or one
// already erased is a caller error with undefined behavior, as the
// hot path performs no ownership validation.
func (t *Tree[K]) Erase(z *Node[K]) bool {
	if z == nil {
		return false
	}
	t.deleteNode(z)
	t.size--
	*z = Node[K]{}
	t.pool.Put(z)
	return true
}

// ToArray fills buf with keys in ascending order, stopping at
// len(buf) or when the tree is exhausted, and returns the count
// written. It never writes past the buffer.
func (t *Tree[K]) ToArray(buf []K) int {
	n := 0
	t.inorderFill(t.root, buf, &n)
	return n
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.ForEachAscending(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// ForEachAscending visits every key in ascending order until fn
// returns false. The tree must not be mutated during the walk.
func (t *Tree[K]) ForEachAscending(fn func(key K) bool) {
	for n := t.minNode(t.root); n != t.nil; n = t.next(n) {
		if !fn(n.key) {
			return
		}
	}
}

// ForEachDescending visits every key in descending order until fn
// returns false. The tree must not be mutated during the walk.
func (t *Tree[K]) ForEachDescending(fn func(key K) bool) {
	for n := t.maxNode(t.root); n != t.nil; n = t.prev(n) {
		if !fn(n.key) {
			return
		}
	}
}

// Clear removes every node, releasing each back to the pool in
// post-order, and resets the tree to empty. Safe on an empty tree.
// The tree remains usable afterwards.
func (t *Tree[K]) Clear() {
	t.releaseSubtree(t.root)
	t.root = t.nil
	t.size = 0
}

/******************** Internal helpers ********************/

func (t *Tree[K]) minNode(n *Node[K]) *Node[K] {
	if n == t.nil {
		return t.nil
	}
	for n.left != t.nil {
		n = n.left
	}
	return n
}

func (t *Tree[K]) maxNode(n *Node[K]) *Node[K] {
	if n == t.nil {
		return t.nil
	}
	for n.right != t.nil {
		n = n.right
	}
	return n
}

func (t *Tree[K]) next(n *Node[K]) *Node[K] {
	if n == nil || n == t.nil {
		return t.nil
	}
	if n.right != t.nil {
		return t.minNode(n.right)
	}
	p := n.parent
	for p != t.nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func (t *Tree[K]) prev(n *Node[K]) *Node[K] {
	if n == nil || n == t.nil {
		return t.nil
	}
	if n.left != t.nil {
		return t.maxNode(n.left)
	}
	p := n.parent
	for p != t.nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

func (t *Tree[K]) leftRotate(x *Node[K]) {
	y := x.right
	x.right = y.left
	if y.left != t.nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K]) rightRotate(y *Node[K]) {
	x := y.left
	y.left = x.right
	if x.right != t.nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.nil {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (t *Tree[K]) insertFixup(z *Node[K]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

// transplant replaces the subtree rooted at u with the one rooted at
// v, fixing only the parent link; u's own children are the caller's
// problem.
func (t *Tree[K]) transplant(u, v *Node[K]) {
	if u.parent == t.nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree[K]) deleteNode(z *Node[K]) {
	y := z
	yOrigColor := y.color
	var x *Node[K]

	if z.left == t.nil {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.nil {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.minNode(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOrigColor == black {
		t.deleteFixup(x)
	}
}

func (t *Tree[K]) deleteFixup(x *Node[K]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

func (t *Tree[K]) inorderFill(n *Node[K], buf []K, idx *int) {
	if n == t.nil || *idx >= len(buf) {
		return
	}
	t.inorderFill(n.left, buf, idx)
	if *idx < len(buf) {
		buf[*idx] = n.key
		*idx += 1
	}
	t.inorderFill(n.right, buf, idx)
}

func (t *Tree[K]) releaseSubtree(n *Node[K]) {
	if n == t.nil {
		return
	}
	t.releaseSubtree(n.left)
	t.releaseSubtree(n.right)
	*n = Node[K]{}
	t.pool.Put(n)
}
