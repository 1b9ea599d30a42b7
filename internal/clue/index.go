package clue

import "strings"

type node struct {
	key   string
	left  *node
	right *node
}

// Index is a binary search tree of clue strings ordered by byte-wise
// comparison. Each key is stored once.
type Index struct {
	root *node
	size int
}

func NewIndex() *Index {
	return &Index{}
}

// Insert adds key to the index and reports whether it was new.
// Inserting a key that is already present leaves the tree unchanged.
func (idx *Index) Insert(key string) bool {
	link := &idx.root
	for *link != nil {
		switch cmp := strings.Compare(key, (*link).key); {
		case cmp < 0:
			link = &(*link).left
		case cmp > 0:
			link = &(*link).right
		default:
			return false
		}
	}

	*link = &node{key: key}
	idx.size++
	return true
}

func (idx *Index) Contains(key string) bool {
	cur := idx.root
	for cur != nil {
		switch cmp := strings.Compare(key, cur.key); {
		case cmp < 0:
			cur = cur.left
		case cmp > 0:
			cur = cur.right
		default:
			return true
		}
	}
	return false
}

// InOrder returns all keys in ascending order.
func (idx *Index) InOrder() []string {
	keys := make([]string, 0, idx.size)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		keys = append(keys, n.key)
		walk(n.right)
	}
	walk(idx.root)
	return keys
}

func (idx *Index) Len() int {
	return idx.size
}

func (idx *Index) IsEmpty() bool {
	return idx.size == 0
}
