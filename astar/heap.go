package astar

// frontierItem references a node in the arena by index. seq is the push
// counter and breaks ties between equal f values.
type frontierItem struct {
	node int
	f    int
	seq  int
}

// frontier is a min-heap of frontierItem ordered by f, then seq.
// Used through container/heap.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by lower f first, then by earlier push.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements in the heap.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push is called by heap.Push; x must be a frontierItem.
func (q *frontier) Push(x any) { *q = append(*q, x.(frontierItem)) }

// Pop is called by heap.Pop and removes the last element.
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
