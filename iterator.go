package xcc

// Selection is one partial or complete assignment produced by a search
// step: the body-cell indices of the subsets committed so far, in
// commit order, with header entries already filtered out.
type Selection[I comparable, N comparable] struct {
	grid      *Grid[I, N]
	bodyCells []int
}

// Names maps each selected subset to the name it was given at
// construction, in commit order.
func (s Selection[I, N]) Names() []N {
	names := make([]N, len(s.bodyCells))
	for i, p := range s.bodyCells {
		names[i] = s.grid.subsetNameFor(p)
	}
	return names
}

// Colors aggregates the color assigned to every secondary item touched
// by the selection. A secondary item absent from the map was left
// uncovered.
func (s Selection[I, N]) Colors() map[I]uint32 {
	colors := make(map[I]uint32)
	for _, p := range s.bodyCells {
		for _, q := range s.grid.rowCells(p) {
			c := s.grid.cells[q]
			if c.color == colorNone {
				continue
			}
			colors[s.grid.headers[c.top].item] = uint32(c.color)
		}
	}
	return colors
}

// Len reports the number of subsets in the selection.
func (s Selection[I, N]) Len() int { return len(s.bodyCells) }

// subsetNameFor walks forward from a body cell until it reaches the
// boundary carrying its subset's name.
func (g *Grid[I, N]) subsetNameFor(p int) N {
	q := p
	for g.cells[q].kind != cellBoundary {
		q++
	}
	return g.cells[q].name
}

// rowCells returns the indices of every cell in the contiguous run
// containing p, including p itself.
func (g *Grid[I, N]) rowCells(p int) []int {
	start := p
	for g.cells[start-1].kind == cellBody {
		start--
	}
	var cells []int
	q := start
	for g.cells[q].kind == cellBody {
		cells = append(cells, q)
		q++
	}
	return cells
}

// Iterator is the common shape shared by SolutionIterator and
// StepIterator: advance with Next, read the current value, and Close
// when done (restoring the grid) whether or not the stream was
// exhausted.
type Iterator[I comparable, N comparable] interface {
	Next() bool
	Current() Selection[I, N]
	Close()
}

// SolutionIterator yields complete solutions only.
type SolutionIterator[I comparable, N comparable] struct {
	grid *Grid[I, N]
	d    *driver[I, N]
	cur  Selection[I, N]
}

// Solutions returns a borrow-based iterator over every exact-cover
// solution of g. The grid is mutated for the lifetime of the iterator;
// callers must Close it (ideally via defer) to restore the grid, and
// must not request a second iterator while one is live.
func (g *Grid[I, N]) Solutions() (*SolutionIterator[I, N], error) {
	if g.busy {
		return nil, ErrGridBusy
	}
	g.busy = true
	return &SolutionIterator[I, N]{grid: g, d: newDriver(g)}, nil
}

// Next advances to the next complete solution, returning false once the
// search space is exhausted.
func (it *SolutionIterator[I, N]) Next() bool {
	for {
		switch it.d.step() {
		case Done:
			return false
		case FoundSolution:
			it.cur = it.selection()
			return true
		}
	}
}

// Current returns the solution found by the most recent Next call.
func (it *SolutionIterator[I, N]) Current() Selection[I, N] { return it.cur }

// Close reverses every pending mutation, restoring the grid, and
// releases it for a future iterator.
func (it *SolutionIterator[I, N]) Close() {
	it.d.close()
	it.grid.busy = false
}

func (it *SolutionIterator[I, N]) selection() Selection[I, N] {
	return it.grid.filterSelection(it.d.stack)
}

// StepKind distinguishes the two values a StepIterator can yield.
type StepKind int

const (
	// Step is an intermediate, incomplete partial assignment.
	Step StepKind = iota
	// SolutionStep is a complete solution.
	SolutionStep
)

// StepValue is one value yielded by a StepIterator.
type StepValue[I comparable, N comparable] struct {
	Kind      StepKind
	Selection Selection[I, N]
}

// StepIterator yields every intermediate partial assignment as well as
// every complete solution.
type StepIterator[I comparable, N comparable] struct {
	grid *Grid[I, N]
	d    *driver[I, N]
	cur  StepValue[I, N]
}

// StepwiseSolutions returns a borrow-based iterator over every search
// step: each Continue surfaces as a Step, each FoundSolution as a
// SolutionStep. Same borrowing rules as Solutions.
func (g *Grid[I, N]) StepwiseSolutions() (*StepIterator[I, N], error) {
	if g.busy {
		return nil, ErrGridBusy
	}
	g.busy = true
	return &StepIterator[I, N]{grid: g, d: newDriver(g)}, nil
}

// Next advances one search step, returning false once the search space
// is exhausted.
func (it *StepIterator[I, N]) Next() bool {
	r := it.d.step()
	if r == Done {
		return false
	}
	kind := Step
	if r == FoundSolution {
		kind = SolutionStep
	}
	it.cur = StepValue[I, N]{Kind: kind, Selection: it.grid.filterSelection(it.d.stack)}
	return true
}

// Current returns the selection of the step produced by the most recent
// Next call.
func (it *StepIterator[I, N]) Current() Selection[I, N] { return it.cur.Selection }

// CurrentStep returns the full step value, including whether it is an
// intermediate Step or a SolutionStep.
func (it *StepIterator[I, N]) CurrentStep() StepValue[I, N] { return it.cur }

// Close reverses every pending mutation, restoring the grid, and
// releases it for a future iterator.
func (it *StepIterator[I, N]) Close() {
	it.d.close()
	it.grid.busy = false
}

func (g *Grid[I, N]) filterSelection(stack []int) Selection[I, N] {
	bodyCells := make([]int, 0, len(stack))
	for _, p := range stack {
		if g.cells[p].kind == cellBody {
			bodyCells = append(bodyCells, p)
		}
	}
	return Selection[I, N]{grid: g, bodyCells: bodyCells}
}

// NamesIterator projects an Iterator's selections onto subset names.
type NamesIterator[I comparable, N comparable] struct {
	it Iterator[I, N]
}

// WithNames wraps it, projecting every selection onto the ordered list
// of subset names it contains.
func WithNames[I comparable, N comparable](it Iterator[I, N]) *NamesIterator[I, N] {
	return &NamesIterator[I, N]{it: it}
}

func (w *NamesIterator[I, N]) Next() bool { return w.it.Next() }
func (w *NamesIterator[I, N]) Names() []N { return w.it.Current().Names() }
func (w *NamesIterator[I, N]) Close()     { w.it.Close() }

// ColorsIterator projects an Iterator's selections onto secondary-item
// color assignments.
type ColorsIterator[I comparable, N comparable] struct {
	it Iterator[I, N]
}

// WithColors wraps it, projecting every selection onto the map of
// secondary items to the color agreed upon for that item.
func WithColors[I comparable, N comparable](it Iterator[I, N]) *ColorsIterator[I, N] {
	return &ColorsIterator[I, N]{it: it}
}

func (w *ColorsIterator[I, N]) Next() bool           { return w.it.Next() }
func (w *ColorsIterator[I, N]) Colors() map[I]uint32 { return w.it.Current().Colors() }
func (w *ColorsIterator[I, N]) Close()               { w.it.Close() }

// MappedIterator projects an Iterator's selections through an
// arbitrary read-only function of the grid and selection.
type MappedIterator[I comparable, N comparable, T any] struct {
	it   Iterator[I, N]
	grid *Grid[I, N]
	f    func(*Grid[I, N], Selection[I, N]) T
	cur  T
}

// Mapped wraps it, applying f to the grid and each selection in turn.
// f must treat the grid as read-only.
func Mapped[I comparable, N comparable, T any](grid *Grid[I, N], it Iterator[I, N], f func(*Grid[I, N], Selection[I, N]) T) *MappedIterator[I, N, T] {
	return &MappedIterator[I, N, T]{it: it, grid: grid, f: f}
}

func (w *MappedIterator[I, N, T]) Next() bool {
	if !w.it.Next() {
		return false
	}
	w.cur = w.f(w.grid, w.it.Current())
	return true
}

func (w *MappedIterator[I, N, T]) Value() T { return w.cur }
func (w *MappedIterator[I, N, T]) Close()   { w.it.Close() }
