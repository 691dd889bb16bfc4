package book

import "github.com/shopspring/decimal"

// PriceLevel is the aggregated resting quantity at one price on one side.
// A level with Qty <= 0 never rests in a tree; it is deleted instead.
type PriceLevel struct {
	Price decimal.Decimal
	Qty   int64
}

type color uint8

const (
	red   color = 0
	black color = 1
)

type node struct {
	level  *PriceLevel
	color  color
	left   *node
	right  *node
	parent *node
}

// LessFunc orders prices within one side of a book. Bids use descending
// order, asks ascending, so the tree's in-order walk is always
// best-to-worst regardless of side.
type LessFunc func(a, b decimal.Decimal) bool

// BidOrder ranks higher prices first.
func BidOrder(a, b decimal.Decimal) bool { return a.Cmp(b) > 0 }

// AskOrder ranks lower prices first.
func AskOrder(a, b decimal.Decimal) bool { return a.Cmp(b) < 0 }

// LevelTree is a red-black tree of price levels keyed by price under a
// side-specific comparator.
type LevelTree struct {
	root *node
	nil_ *node // sentinel (black)
	less LessFunc
	size int
}

// NewLevelTree constructs an empty tree with a black sentinel.
func NewLevelTree(less LessFunc) *LevelTree {
	sentinel := &node{color: black}
	return &LevelTree{
		root: sentinel,
		nil_: sentinel,
		less: less,
	}
}

func (t *LevelTree) Size() int { return t.size }

// Find returns the level at an exact price, or nil.
func (t *LevelTree) Find(price decimal.Decimal) *PriceLevel {
	n := t.search(price)
	if n == t.nil_ {
		return nil
	}
	return n.level
}

// Upsert returns the level at price, inserting an empty one if absent.
func (t *LevelTree) Upsert(price decimal.Decimal) *PriceLevel {
	y := t.nil_
	x := t.root
	for x != t.nil_ {
		y = x
		if t.less(price, x.level.Price) {
			x = x.left
		} else if t.less(x.level.Price, price) {
			x = x.right
		} else {
			return x.level
		}
	}

	lvl := &PriceLevel{Price: price}
	z := &node{
		level:  lvl,
		color:  red,
		left:   t.nil_,
		right:  t.nil_,
		parent: y,
	}

	if y == t.nil_ {
		t.root = z
	} else if t.less(price, y.level.Price) {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
	t.size++
	return lvl
}

// Delete removes the level at price. Reports whether anything was removed.
func (t *LevelTree) Delete(price decimal.Decimal) bool {
	z := t.search(price)
	if z == t.nil_ {
		return false
	}
	t.deleteNode(z)
	t.size--
	return true
}

// Best returns the first level in comparator order (highest bid or
// lowest ask), or nil on an empty side.
func (t *LevelTree) Best() *PriceLevel {
	n := t.minNode(t.root)
	if n == t.nil_ {
		return nil
	}
	return n.level
}

// Walk visits levels best-to-worst until fn returns false.
func (t *LevelTree) Walk(fn func(*PriceLevel) bool) {
	for n := t.minNode(t.root); n != t.nil_; n = t.next(n) {
		if !fn(n.level) {
			return
		}
	}
}

// TopLevels copies up to k best levels. k <= 0 means all.
func (t *LevelTree) TopLevels(k int) []PriceLevel {
	if k <= 0 {
		k = t.size
	}
	out := make([]PriceLevel, 0, min(k, t.size))
	t.Walk(func(lvl *PriceLevel) bool {
		out = append(out, *lvl)
		return len(out) < k
	})
	return out
}

/******************** Internal helpers ********************/

func (t *LevelTree) search(price decimal.Decimal) *node {
	n := t.root
	for n != t.nil_ {
		if t.less(price, n.level.Price) {
			n = n.left
		} else if t.less(n.level.Price, price) {
			n = n.right
		} else {
			return n
		}
	}
	return t.nil_
}

func (t *LevelTree) minNode(n *node) *node {
	if n == t.nil_ {
		return t.nil_
	}
	for n.left != t.nil_ {
		n = n.left
	}
	return n
}

func (t *LevelTree) next(n *node) *node {
	if n == t.nil_ {
		return t.nil_
	}
	if n.right != t.nil_ {
		return t.minNode(n.right)
	}
	p := n.parent
	for p != t.nil_ && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func (t *LevelTree) leftRotate(x *node) {
	y := x.right
	x.right = y.left
	if y.left != t.nil_ {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nil_ {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *LevelTree) rightRotate(y *node) {
	x := y.left
	y.left = x.right
	if x.right != t.nil_ {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.nil_ {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (t *LevelTree) insertFixup(z *node) {
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

func (t *LevelTree) transplant(u, v *node) {
	if u.parent == t.nil_ {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *LevelTree) deleteNode(z *node) {
	y := z
	yOrigColor := y.color
	var x *node

	if z.left == t.nil_ {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.nil_ {
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

func (t *LevelTree) deleteFixup(x *node) {
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
					t.leftRotate(x.parent)
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

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
