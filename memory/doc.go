// Package memory provides the low-level allocation primitives backing
// the tree: a typed recycling pool for unbounded trees and a
// fixed-capacity slab arena for trees that must report allocation
// failure instead of growing.
//
// The memory package is dependency-free and takes no position on what
// it allocates; the tree decides when objects are live.
package memory
