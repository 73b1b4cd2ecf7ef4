package front

import "github.com/chris-martin/delaunay/topo"

// openQueue is the insertion-ordered open-edge queue from spec §4.3: a
// FIFO of edges paired with a membership set, so an edge that closes
// before reaching the front of the queue is simply skipped when popped
// (lazy deletion) rather than removed from the middle of a slice.
//
// prevOf[e] is the "previous vertex" — the vertex on the already-closed
// side of e — with a nil value for the seed edge, which has no closed
// side yet.
type openQueue struct {
	order  []topo.Edge
	prevOf map[topo.Edge]*topo.Vertex
}

func newOpenQueue() *openQueue {
	return &openQueue{prevOf: make(map[topo.Edge]*topo.Vertex)}
}

// push opens e with the given previous vertex. e must not already be open.
func (q *openQueue) push(e topo.Edge, prev *topo.Vertex) {
	q.prevOf[e] = prev
	q.order = append(q.order, e)
}

// closeIfOpen closes e if it is currently open, reporting whether it was.
func (q *openQueue) closeIfOpen(e topo.Edge) bool {
	if _, ok := q.prevOf[e]; !ok {
		return false
	}
	delete(q.prevOf, e)
	return true
}

// pop removes and returns the oldest still-open edge, skipping any entries
// that were closed while waiting in the queue. ok is false once the queue
// is exhausted.
func (q *openQueue) pop() (e topo.Edge, prev *topo.Vertex, ok bool) {
	for len(q.order) > 0 {
		e = q.order[0]
		q.order = q.order[1:]
		if prev, ok = q.prevOf[e]; ok {
			delete(q.prevOf, e)
			return e, prev, true
		}
	}
	return topo.Edge{}, nil, false
}
