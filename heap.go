package depq

import "math/bits"

// The heap is laid out as an implicit binary tree whose depth levels
// alternate between min-ordered and max-ordered, starting with a min level
// at the root. Every entry on a min level is less than all of its
// descendants under the composite (priority, seq) order; every entry on a
// max level is greater than all of its descendants. Min-max heaps are due
// to Atkinson et al., "Min-Max Heaps and Generalized Priority Queues"
// (CACM, 1986).

func level(i int) int { return bits.Len(uint(i)+1) - 1 }

func isMinLevel(i int) bool { return level(i)%2 == 0 }

func lchild(i int) int { return 2*i + 1 }

func rchild(i int) int { return 2*i + 2 }

func parent(i int) int { return (i - 1) / 2 }

func grandparent(i int) int { return parent(parent(i)) }

// less compares the entries at slots i and j under the composite
// (priority, seq) key. The composite key is a strict total order: seq
// values are unique, so no two entries ever compare equal.
func (q *Queue[T, P]) less(i, j int) bool {
	a, b := &q.entries[i], &q.entries[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

// swap exchanges the entries at slots i and j and keeps the identity index
// consistent with the array.
func (q *Queue[T, P]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.slots[q.entries[i].item] = i
	q.slots[q.entries[j].item] = j
}

// up restores the invariant above slot i after an insertion or update.
// The entry is first checked against its parent, which sits on the
// opposite level kind; a swap there moves it onto the parent's level.
// From then on it only competes with its grandparents, which share its
// level kind.
func (q *Queue[T, P]) up(i int) {
	min := isMinLevel(i)

	if i > 0 {
		p := parent(i)
		if q.less(p, i) == min {
			q.swap(i, p)
			min = !min
			i = p
		}
	}

	for i > 2 {
		g := grandparent(i)
		if q.less(i, g) != min {
			return
		}
		q.swap(i, g)
		i = g
	}
}

// down restores the invariant below slot i after a removal or update. At
// each step the extreme entry for i's level kind is sought among the
// children and grandchildren; a swap with a direct child terminates, a
// swap with a grandchild may leave the grandchild's parent out of order
// (fixed with one extra swap) and descends.
//
// A descent only settles the subtree. The entry at its final slot sits on
// the opposite level kind whenever it descended an odd number of levels
// and can still be out of order with its own ancestor chain, and an
// intra-descent parent swap parks a second entry one level up with the
// same exposure. down returns both slots so callers can sift up from each.
func (q *Queue[T, P]) down(i int) (last, displaced int) {
	n := len(q.entries)
	min := isMinLevel(i)
	last, displaced = i, i
	for {
		m := i

		l := lchild(i)
		if l >= n {
			break
		}
		if q.less(l, m) == min {
			m = l
		}
		r := rchild(i)
		if r < n && q.less(r, m) == min {
			m = r
		}
		// Grandchildren occupy the contiguous range 4i+3..4i+6.
		for g := lchild(l); g < n && g <= rchild(r); g++ {
			if q.less(g, m) == min {
				m = g
			}
		}

		if m == i {
			break
		}
		q.swap(i, m)
		last = m
		if m == l || m == r {
			break
		}

		// m is a grandchild; its new parent is on the opposite level and
		// may now be out of order with the moved entry.
		if p := parent(m); q.less(p, m) == min {
			q.swap(m, p)
			displaced = p
		}
		i = m
	}
	return last, displaced
}

// fix restores the invariant around slot i after its entry changed in an
// unknown direction: sift down first, then sift up from every slot the
// descent left exposed.
func (q *Queue[T, P]) fix(i int) {
	last, displaced := q.down(i)
	q.up(last)
	if displaced != last {
		q.up(displaced)
	}
}
