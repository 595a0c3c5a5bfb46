package bookengine

// RBTree is a price-ordered map from Price to *PriceLevel (C3). It is
// side-agnostic: a Buy ladder and a Sell ladder are both plain RBTrees,
// and which end counts as "best" is a decision the book makes on top
// (see ladder.go) — Buy's best is the maximum key, Sell's best is the
// minimum key. An empty level is never retained: DeleteLevel is called
// the moment a level's queue empties.
//
// The rotation and rebalancing machinery is written once per operation,
// parameterized by direction, rather than as a left/right pair of mirror
// functions: this module's own access pattern is best/worst lookups and
// whole-ladder walks, not general predecessor/successor navigation, so
// the internals are shaped around a single directional primitive instead
// of carrying the full textbook left+right surface.
type rbColor uint8

const (
	red   rbColor = 0
	black rbColor = 1
)

// rbDir selects which child pointer an operation acts on. Every piece of
// rebalancing logic below is written once in terms of a direction and
// its opposite, rather than duplicated per side.
type rbDir uint8

const (
	dirLeft rbDir = iota
	dirRight
)

func opposite(d rbDir) rbDir {
	if d == dirLeft {
		return dirRight
	}
	return dirLeft
}

type rbNode struct {
	key    Price
	level  *PriceLevel
	color  rbColor
	left   *rbNode
	right  *rbNode
	parent *rbNode
}

func (n *rbNode) child(d rbDir) *rbNode {
	if d == dirLeft {
		return n.left
	}
	return n.right
}

func (n *rbNode) setChild(d rbDir, c *rbNode) {
	if d == dirLeft {
		n.left = c
	} else {
		n.right = c
	}
}

type RBTree struct {
	root *rbNode
	nilN *rbNode // sentinel (always black)
	size int
}

// NewRBTree constructs an empty tree with a black sentinel.
func NewRBTree() *RBTree {
	sentinel := &rbNode{color: black}
	return &RBTree{root: sentinel, nilN: sentinel}
}

// Size returns the number of populated price levels.
func (t *RBTree) Size() int { return t.size }

// FindLevel returns the level at price, or nil if none is resident.
func (t *RBTree) FindLevel(price Price) *PriceLevel {
	n := t.root
	for n != t.nilN {
		switch {
		case price < n.key:
			n = n.left
		case price > n.key:
			n = n.right
		default:
			return n.level
		}
	}
	return nil
}

// GetOrCreateLevel returns the level at price, creating an empty one and
// inserting it into the tree if none exists yet.
func (t *RBTree) GetOrCreateLevel(price Price) *PriceLevel {
	y := t.nilN
	x := t.root
	for x != t.nilN {
		y = x
		switch {
		case price < x.key:
			x = x.left
		case price > x.key:
			x = x.right
		default:
			return x.level
		}
	}

	pl := &PriceLevel{Price: price}
	z := &rbNode{key: price, level: pl, color: red, left: t.nilN, right: t.nilN, parent: y}
	if y == t.nilN {
		t.root = z
	} else if z.key < y.key {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
	t.size++
	return pl
}

// DeleteLevel removes the level at price. Returns false if absent.
func (t *RBTree) DeleteLevel(price Price) bool {
	z := t.searchNode(price)
	if z == t.nilN {
		return false
	}
	t.deleteNode(z)
	t.size--
	return true
}

// MinLevel returns the level at the lowest resident price, or nil.
func (t *RBTree) MinLevel() *PriceLevel {
	n := t.extreme(t.root, dirLeft)
	if n == t.nilN {
		return nil
	}
	return n.level
}

// MaxLevel returns the level at the highest resident price, or nil.
func (t *RBTree) MaxLevel() *PriceLevel {
	n := t.extreme(t.root, dirRight)
	if n == t.nilN {
		return nil
	}
	return n.level
}

// ForEachAscending walks every resident level from lowest to highest
// price, stopping early if fn returns false.
func (t *RBTree) ForEachAscending(fn func(*PriceLevel) bool) {
	t.walk(t.root, dirLeft, fn)
}

// ForEachDescending walks every resident level from highest to lowest
// price, stopping early if fn returns false.
func (t *RBTree) ForEachDescending(fn func(*PriceLevel) bool) {
	t.walk(t.root, dirRight, fn)
}

/******************** Internal helpers ********************/

func (t *RBTree) searchNode(price Price) *rbNode {
	n := t.root
	for n != t.nilN {
		switch {
		case price < n.key:
			n = n.left
		case price > n.key:
			n = n.right
		default:
			return n
		}
	}
	return t.nilN
}

// extreme returns the node reached by always following child d from n —
// the minimum for d == dirLeft, the maximum for d == dirRight. MinLevel,
// MaxLevel, and deleteNode's in-order successor search all reduce to
// this one primitive.
func (t *RBTree) extreme(n *rbNode, d rbDir) *rbNode {
	if n == t.nilN {
		return t.nilN
	}
	for n.child(d) != t.nilN {
		n = n.child(d)
	}
	return n
}

// walk performs an in-order traversal, visiting child d before the node
// and child opposite(d) after it: d == dirLeft yields ascending order,
// d == dirRight yields descending. This single recursive primitive
// replaces an explicit iterative successor/predecessor walk — the
// ladder's public surface only ever needs whole-tree, best-to-worst
// traversal, never a standalone "next node after this one" operation.
func (t *RBTree) walk(n *rbNode, d rbDir, fn func(*PriceLevel) bool) bool {
	if n == t.nilN {
		return true
	}
	if !t.walk(n.child(d), d, fn) {
		return false
	}
	if !fn(n.level) {
		return false
	}
	return t.walk(n.child(opposite(d)), d, fn)
}

// rotate rotates x in direction d: the child on the opposite side takes
// x's place, and x becomes that child's d-side child. d == dirLeft is
// the textbook left-rotate, d == dirRight the textbook right-rotate;
// unified here since the two are mirror images of each other.
func (t *RBTree) rotate(x *rbNode, d rbDir) {
	od := opposite(d)
	y := x.child(od)
	x.setChild(od, y.child(d))
	if y.child(d) != t.nilN {
		y.child(d).parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nilN:
		t.root = y
	case x == x.parent.child(d):
		x.parent.setChild(d, y)
	default:
		x.parent.setChild(od, y)
	}
	y.setChild(d, x)
	x.parent = y
}

func (t *RBTree) insertFixup(z *rbNode) {
	for z.parent.color == red {
		d := dirLeft
		if z.parent == z.parent.parent.right {
			d = dirRight
		}
		od := opposite(d)

		uncle := z.parent.parent.child(od)
		if uncle.color == red {
			z.parent.color = black
			uncle.color = black
			z.parent.parent.color = red
			z = z.parent.parent
			continue
		}

		if z == z.parent.child(od) {
			z = z.parent
			t.rotate(z, d)
		}
		z.parent.color = black
		z.parent.parent.color = red
		t.rotate(z.parent.parent, od)
	}
	t.root.color = black
}

func (t *RBTree) transplant(u, v *rbNode) {
	if u.parent == t.nilN {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *RBTree) deleteNode(z *rbNode) {
	y := z
	yOrigColor := y.color
	var x *rbNode

	if z.left == t.nilN {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.nilN {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.extreme(z.right, dirLeft)
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

func (t *RBTree) deleteFixup(x *rbNode) {
	for x != t.root && x.color == black {
		d := dirLeft
		if x != x.parent.left {
			d = dirRight
		}
		od := opposite(d)

		w := x.parent.child(od)
		if w.color == red {
			w.color = black
			x.parent.color = red
			t.rotate(x.parent, d)
			w = x.parent.child(od)
		}

		if w.child(d).color == black && w.child(od).color == black {
			w.color = red
			x = x.parent
			continue
		}

		if w.child(od).color == black {
			w.child(d).color = black
			w.color = red
			t.rotate(w, od)
			w = x.parent.child(od)
		}
		w.color = x.parent.color
		x.parent.color = black
		w.child(od).color = black
		t.rotate(x.parent, d)
		x = t.root
	}
	x.color = black
}
