package search

// frontier is the open list of one strategy.
type frontier interface {
	push(s State)
	pop() State
	len() int
}

// walker encapsulates the per-call search frame: open/closed sets,
// predecessor links and costs. Nothing in it outlives one Solve call.
type walker struct {
	domain    Searchable
	opts      Options
	open      frontier
	inOpen    map[State]struct{}
	closed    map[State]struct{}
	parent    map[State]State
	cost      map[State]int
	evaluated int
}

func newWalker(domain Searchable, opts Options, open frontier) *walker {
	return &walker{
		domain: domain,
		opts:   opts,
		open:   open,
		inOpen: make(map[State]struct{}),
		closed: make(map[State]struct{}),
		parent: make(map[State]State),
		cost:   make(map[State]int),
	}
}

// run searches from the domain's start to its goal.
// The returned Solution is never nil.
func (w *walker) run() (*Solution, error) {
	// 1) Resolve endpoints.
	start, err := w.domain.StartState()
	if err != nil {
		return nil, err
	}
	goal, err := w.domain.GoalState()
	if err != nil {
		return nil, err
	}

	// 2) Seed the frontier with the start at cost 0.
	w.cost[start] = 0
	w.enqueue(start)

	// 3) Pop, finalize, test, expand.
	for w.open.len() > 0 {
		cur := w.open.pop()
		delete(w.inOpen, cur)
		w.closed[cur] = struct{}{}
		w.evaluated++
		w.opts.OnVisit(cur)

		if cur == goal {
			return reconstruct(cur, w.parent, w.cost[cur]), nil
		}
		for _, next := range w.domain.Neighbors(cur) {
			if w.seen(next) {
				continue
			}
			// predecessor is assigned once, at first discovery
			w.parent[next] = cur
			w.cost[next] = w.cost[cur] + 1
			w.enqueue(next)
		}
	}

	return reconstruct(nil, nil, 0), nil
}

func (w *walker) enqueue(s State) {
	w.inOpen[s] = struct{}{}
	w.open.push(s)
}

// seen reports whether s is closed or waiting in the frontier.
func (w *walker) seen(s State) bool {
	if _, ok := w.closed[s]; ok {
		return true
	}
	_, ok := w.inOpen[s]
	return ok
}

// fifo is the breadth-first frontier.
type fifo struct {
	items []State
	head  int
}

func (q *fifo) push(s State) { q.items = append(q.items, s) }

func (q *fifo) pop() State {
	s := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	return s
}

func (q *fifo) len() int { return len(q.items) - q.head }

// lifo is the depth-first frontier.
type lifo struct {
	items []State
}

func (st *lifo) push(s State) { st.items = append(st.items, s) }

func (st *lifo) pop() State {
	n := len(st.items) - 1
	s := st.items[n]
	st.items = st.items[:n]
	return s
}

func (st *lifo) len() int { return len(st.items) }
