package xcc

import "log"

// StepResult reports the outcome of one call to driver.step.
type StepResult int

const (
	// Continue means the search advanced one step without completing a
	// solution; more steps remain.
	Continue StepResult = iota
	// FoundSolution means the current stack is a complete solution.
	FoundSolution
	// Done means the search space is exhausted.
	Done
)

func (r StepResult) String() string {
	switch r {
	case FoundSolution:
		return "FoundSolution"
	case Done:
		return "Done"
	default:
		return "Continue"
	}
}

// driver walks the grid's search tree one step at a time, maintaining a
// selection stack of body-cell indices, one per committed choice, with
// at most one header index on top: chooseNextItem pushes the header of
// the item it covers, and exploreNextChoice replaces it with a body cell
// of that item's ring.
type driver[I comparable, N comparable] struct {
	grid    *Grid[I, N]
	stack   []int
	started bool
}

func newDriver[I comparable, N comparable](g *Grid[I, N]) *driver[I, N] {
	return &driver[I, N]{grid: g}
}

// chooseItem implements the least-remaining-values branching heuristic:
// scan the active primary ring and return the item with minimum size,
// ties broken by lowest index. Returns 0 (the primary sentinel) when no
// primary items remain active, signaling a complete solution.
func (g *Grid[I, N]) chooseItem() int {
	best := 0
	bestSize := -1
	p := g.headers[0].next
	for p != 0 {
		size := g.cells[p].size
		if bestSize == -1 || size < bestSize {
			bestSize = size
			best = p
			if bestSize == 0 {
				return best
			}
		}
		p = g.headers[p].next
	}
	return best
}

// step performs one atomic unit of search progress.
func (d *driver[I, N]) step() StepResult {
	if d.started {
		if d.exploreNextChoice() == Done {
			return Done
		}
	}
	d.started = true
	return d.chooseNextItem()
}

func (d *driver[I, N]) chooseNextItem() StepResult {
	i := d.grid.chooseItem()
	if i == 0 {
		if d.grid.trace {
			log.Printf("xcc: solution at depth %d", len(d.stack))
		}
		return FoundSolution
	}
	d.grid.cover(i)
	d.stack = append(d.stack, i)
	return Continue
}

func (d *driver[I, N]) exploreNextChoice() StepResult {
	for len(d.stack) > 0 {
		p := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]

		if d.grid.cells[p].kind == cellBody {
			d.grid.uncoverRemainingChoices(p)
		}

		p = d.grid.cells[p].down

		if d.grid.cells[p].kind == cellHeader {
			d.grid.uncover(p)
			continue
		}

		d.grid.coverRemainingChoices(p)
		d.stack = append(d.stack, p)
		return Continue
	}
	return Done
}

// close reverses every pending entry on the stack, top-down, restoring
// the grid to the state it was in before the driver started.
func (d *driver[I, N]) close() {
	for i := len(d.stack) - 1; i >= 0; i-- {
		p := d.stack[i]
		if d.grid.cells[p].kind == cellBody {
			d.grid.uncoverRemainingChoices(p)
			d.grid.uncover(d.grid.cells[p].top)
		} else {
			d.grid.uncover(p)
		}
	}
	d.stack = nil
}
