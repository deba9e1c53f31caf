package xcc

import "github.com/pkg/errors"

// colorNone marks a body cell as carrying no active color: either it
// belongs to a primary item, or purify has already found it satisfied.
const colorNone int64 = -1

// cellKind tags a node-array entry as one of the three variants
// described by the grid layout: header, boundary (spacer), or body.
type cellKind uint8

const (
	cellHeader cellKind = iota
	cellBoundary
	cellBody
)

// header is one entry of the item-header array H[0..M+1]. Indices
// 1..numPrimary are primary items, numPrimary+1..numItems are secondary
// items, in input order; index 0 and numItems+1 are sentinels.
type header[I comparable] struct {
	item    I
	hasItem bool
	prev    int
	next    int
	kind    Kind

	// color holds the color most recently committed to this (secondary)
	// item by purify, so unpurify can read it back.
	color int64
}

// cell is one entry of the node array B. Depending on kind, only a
// subset of the fields below are meaningful:
//
//   - cellHeader: size, up, down
//   - cellBoundary: firstForPrev, lastForNext, name, hasName
//   - cellBody: top, color, up, down
type cell[N comparable] struct {
	kind cellKind

	size int

	up, down int

	top   int
	color int64

	firstForPrev int
	lastForNext  int
	name         N
	hasName      bool
}

// Grid is the exact-cover-with-colors mesh: an item-header array and a
// node array encoding the sparse incidence between items and subsets.
// A Grid is constructed once by New and is then solved by obtaining an
// iterator (Solutions, StepwiseSolutions). Exactly one iterator may be
// live over a Grid at a time; concurrent iterators over the same Grid
// race on the mutable mesh and are rejected with ErrGridBusy.
type Grid[I comparable, N comparable] struct {
	headers []header[I]
	cells   []cell[N]

	numPrimary int
	numItems   int

	itemIndex map[I]int

	busy bool

	trace bool
}

// New builds a Grid from a universe of items and a list of named
// subsets. It fails with a wrapped ErrDuplicateItem, ErrDuplicateSubsetName,
// ErrUnknownItem, or ErrKindMismatch if the inputs are not well-formed;
// no Grid is returned in that case.
func New[I comparable, N comparable](items []ItemSpec[I], subsets []SubsetSpec[I, N]) (*Grid[I, N], error) {
	g := &Grid[I, N]{}
	if err := g.build(items, subsets); err != nil {
		return nil, err
	}
	return g, nil
}

// WithTrace enables low-level debug tracing to the standard library log
// package: one line per hide, unhide, cover, uncover, purify and
// unpurify call, and one line per solution found with its stack depth.
// commit/uncommit, the remaining-choices walks and intermediate search
// steps are not logged. Intended for debugging this package, not for
// production use.
func (g *Grid[I, N]) WithTrace(enabled bool) *Grid[I, N] {
	g.trace = enabled
	return g
}

func (g *Grid[I, N]) build(items []ItemSpec[I], subsets []SubsetSpec[I, N]) error {
	// Stably partition: primaries first, secondaries second.
	primaries := make([]ItemSpec[I], 0, len(items))
	secondaries := make([]ItemSpec[I], 0, len(items))
	for _, it := range items {
		if it.Kind == Primary {
			primaries = append(primaries, it)
		} else {
			secondaries = append(secondaries, it)
		}
	}

	n1 := len(primaries)
	n2 := len(secondaries)
	n := n1 + n2

	g.numPrimary = n1
	g.numItems = n
	g.itemIndex = make(map[I]int, n)

	// Header array: two sentinels plus n items.
	g.headers = make([]header[I], n+2)

	ordered := make([]ItemSpec[I], 0, n)
	ordered = append(ordered, primaries...)
	ordered = append(ordered, secondaries...)

	for j, it := range ordered {
		i := j + 1
		if _, dup := g.itemIndex[it.Item]; dup {
			return errors.Wrapf(ErrDuplicateItem, "item %v", it.Item)
		}
		g.itemIndex[it.Item] = i
		g.headers[i] = header[I]{item: it.Item, hasItem: true, kind: it.Kind, color: colorNone}
	}

	// Primary ring: 0 -> 1 -> ... -> n1 -> 0.
	if n1 > 0 {
		g.headers[0].next = 1
		g.headers[0].prev = n1
		for i := 1; i <= n1; i++ {
			g.headers[i].prev = i - 1
			g.headers[i].next = i + 1
		}
		g.headers[n1].next = 0
	} else {
		g.headers[0].next = 0
		g.headers[0].prev = 0
	}

	// Secondary ring: (n+1) -> (n1+1) -> ... -> n -> (n+1).
	if n2 > 0 {
		g.headers[n+1].next = n1 + 1
		g.headers[n+1].prev = n
		for i := n1 + 1; i <= n; i++ {
			g.headers[i].prev = i - 1
			g.headers[i].next = i + 1
		}
		g.headers[n].next = n + 1
		g.headers[n1+1].prev = n + 1
	} else {
		g.headers[n+1].next = n + 1
		g.headers[n+1].prev = n + 1
	}

	// Node array: leading boundary sentinel, one header cell per item,
	// trailing boundary sentinel.
	g.cells = make([]cell[N], n+2)
	for i := 1; i <= n; i++ {
		g.cells[i] = cell[N]{kind: cellHeader, size: 0, up: i, down: i}
	}
	g.cells[0] = cell[N]{kind: cellBoundary}
	g.cells[n+1] = cell[N]{kind: cellBoundary}

	names := make(map[N]bool, len(subsets))
	prevBoundary := n + 1

	for si, subset := range subsets {
		if names[subset.Name] {
			return errors.Wrapf(ErrDuplicateSubsetName, "subset #%d name %v", si, subset.Name)
		}
		names[subset.Name] = true

		start := len(g.cells)

		for _, c := range subset.Constraints {
			i, ok := g.itemIndex[c.Item()]
			if !ok {
				return errors.Wrapf(ErrUnknownItem, "subset %v references item %v", subset.Name, c.Item())
			}
			if (g.headers[i].kind == Secondary) != c.Secondary() {
				return errors.Wrapf(ErrKindMismatch, "subset %v: item %v declared %v but constraint is %v",
					subset.Name, c.Item(), g.headers[i].kind, constraintKind(c))
			}

			x := len(g.cells)
			color := colorNone
			if c.Secondary() {
				color = int64(c.Color())
			}
			g.cells = append(g.cells, cell[N]{kind: cellBody, top: i, color: color})

			tail := g.cells[i].up
			g.cells[x].up = tail
			g.cells[x].down = i
			g.cells[tail].down = x
			g.cells[i].up = x
			g.cells[i].size++
		}

		last := len(g.cells) - 1
		if last >= start {
			g.cells[prevBoundary].lastForNext = last
		} else {
			g.cells[prevBoundary].lastForNext = prevBoundary
		}

		boundary := len(g.cells)
		g.cells = append(g.cells, cell[N]{
			kind:         cellBoundary,
			firstForPrev: start,
			name:         subset.Name,
			hasName:      true,
		})
		prevBoundary = boundary
	}

	return nil
}

func constraintKind[I comparable](c Constraint[I]) Kind {
	if c.Secondary() {
		return Secondary
	}
	return Primary
}
