package xcc

import "log"

// hide removes from their vertical rings every body cell in the same
// subset as cell p, except p itself. Reversed exactly by unhide.
func (g *Grid[I, N]) hide(p int) {
	if g.trace {
		log.Printf("xcc: hide(%d)", p)
	}
	q := p + 1
	for q != p {
		c := &g.cells[q]
		if c.kind == cellBoundary {
			q = c.firstForPrev
			continue
		}
		if g.headers[c.top].kind == Primary || c.color != colorNone {
			u, d := c.up, c.down
			g.cells[u].down = d
			g.cells[d].up = u
		}
		g.cells[c.top].size--
		q++
	}
}

// unhide is the exact inverse of hide.
func (g *Grid[I, N]) unhide(p int) {
	if g.trace {
		log.Printf("xcc: unhide(%d)", p)
	}
	q := p - 1
	for q != p {
		c := &g.cells[q]
		if c.kind == cellBoundary {
			q = c.lastForNext
			continue
		}
		g.cells[c.top].size++
		if g.headers[c.top].kind == Primary || c.color != colorNone {
			g.cells[c.up].down = q
			g.cells[c.down].up = q
		}
		q--
	}
}

// cover removes primary item i from consideration: every subset
// touching it is hidden, then the item itself is unlinked from the
// active-item ring. Reversed exactly by uncover.
func (g *Grid[I, N]) cover(i int) {
	if g.trace {
		log.Printf("xcc: cover(%d)", i)
	}
	p := g.cells[i].down
	for p != i {
		g.hide(p)
		p = g.cells[p].down
	}
	l, r := g.headers[i].prev, g.headers[i].next
	g.headers[r].prev = l
	g.headers[l].next = r
}

// uncover is the exact inverse of cover.
func (g *Grid[I, N]) uncover(i int) {
	if g.trace {
		log.Printf("xcc: uncover(%d)", i)
	}
	l, r := g.headers[i].prev, g.headers[i].next
	g.headers[l].next = i
	g.headers[r].prev = i

	p := g.cells[i].up
	for p != i {
		g.unhide(p)
		p = g.cells[p].up
	}
}

// purify commits body cell p's color choice for its (secondary) item:
// every other cell in the item's ring either agrees (and is marked
// satisfied, colorNone) or is hidden as a conflicting choice. Reversed
// exactly by unpurify.
func (g *Grid[I, N]) purify(p int) {
	if g.trace {
		log.Printf("xcc: purify(%d)", p)
	}
	c := g.cells[p].color
	i := g.cells[p].top
	g.headers[i].color = c
	q := g.cells[i].down
	for q != i {
		if q != p {
			if g.cells[q].color == c {
				g.cells[q].color = colorNone
			} else {
				g.hide(q)
			}
		}
		q = g.cells[q].down
	}
}

// unpurify is the exact inverse of purify. It reads the committed color
// back from the header slot purify stored it in.
func (g *Grid[I, N]) unpurify(p int) {
	if g.trace {
		log.Printf("xcc: unpurify(%d)", p)
	}
	i := g.cells[p].top
	c := g.headers[i].color
	q := g.cells[i].up
	for q != i {
		if q != p {
			if g.cells[q].color == colorNone {
				g.cells[q].color = c
			} else {
				g.unhide(q)
			}
		}
		q = g.cells[q].up
	}
	g.headers[i].color = colorNone
}

// commit applies the consequence of selecting body cell p for item i:
// cover it if primary; if secondary, purify it unless some other row
// already committed to the same item's color and marked p as agreeing
// (p.color == colorNone), in which case there is nothing left to do.
// Reversed exactly by uncommit.
func (g *Grid[I, N]) commit(p, i int) {
	if g.headers[i].kind == Primary {
		g.cover(i)
	} else if g.cells[p].color != colorNone {
		g.purify(p)
	}
}

// uncommit is the exact inverse of commit.
func (g *Grid[I, N]) uncommit(p, i int) {
	if g.headers[i].kind == Primary {
		g.uncover(i)
	} else if g.cells[p].color != colorNone {
		g.unpurify(p)
	}
}

// coverRemainingChoices commits every other cell in p's subset, walking
// forward from p (exclusive) and looping through boundaries. Reversed
// exactly by uncoverRemainingChoices walking backward.
func (g *Grid[I, N]) coverRemainingChoices(p int) {
	q := p + 1
	for q != p {
		c := &g.cells[q]
		if c.kind == cellBoundary {
			q = c.firstForPrev
			continue
		}
		g.commit(q, c.top)
		q++
	}
}

// uncoverRemainingChoices is the exact inverse of coverRemainingChoices.
func (g *Grid[I, N]) uncoverRemainingChoices(p int) {
	q := p - 1
	for q != p {
		c := &g.cells[q]
		if c.kind == cellBoundary {
			q = c.lastForNext
			continue
		}
		g.uncommit(q, c.top)
		q--
	}
}
