// Package rbtree implements an in-memory ordered index: a red-black
// binary search tree over any ordered key type, with O(log n) insert,
// find, and erase. Duplicate keys are allowed and keep their insertion
// order (equal keys descend right).
//
// A tree is a single-writer structure. It provides no internal
// synchronization; callers that share a tree across goroutines must
// serialize all access, reads included.
//
// Node memory is recycled through maple/memory. Trees built with New
// draw from an unbounded pool; trees built with NewFixed draw from a
// preallocated arena and report exhaustion through Insert returning
// nil, leaving the tree untouched.
package rbtree
