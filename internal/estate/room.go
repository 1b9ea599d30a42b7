package estate

// Room is a node of the estate map. A room owns its two subtrees and is not
// modified after construction.
type Room struct {
	name  string
	clue  string
	left  *Room
	right *Room
}

// NewRoom creates a room with optional children. An empty clue means the room
// holds no clue.
func NewRoom(name, clue string, left, right *Room) *Room {
	return &Room{
		name:  name,
		clue:  clue,
		left:  left,
		right: right,
	}
}

func NewLeaf(name, clue string) *Room {
	return NewRoom(name, clue, nil, nil)
}

func (r *Room) Name() string {
	return r.name
}

// Clue returns the clue found in the room, if any
func (r *Room) Clue() (string, bool) {
	return r.clue, r.clue != ""
}

func (r *Room) Left() *Room {
	return r.left
}

func (r *Room) Right() *Room {
	return r.right
}

func (r *Room) IsLeaf() bool {
	return r.left == nil && r.right == nil
}

// TraversePreOrder visits the room, then its left subtree, then its right subtree.
func (r *Room) TraversePreOrder(visit func(*Room)) {
	if r == nil {
		return
	}
	visit(r)
	r.left.TraversePreOrder(visit)
	r.right.TraversePreOrder(visit)
}

// Height is the number of edges on the longest path down to a leaf.
// A single room has height 0 and a nil tree has height -1.
func (r *Room) Height() int {
	if r == nil {
		return -1
	}
	return 1 + max(r.left.Height(), r.right.Height())
}

func (r *Room) Count() int {
	count := 0
	r.TraversePreOrder(func(*Room) { count++ })
	return count
}
