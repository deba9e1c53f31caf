package xcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot[I comparable, N comparable](g *Grid[I, N]) ([]header[I], []cell[N]) {
	headers := make([]header[I], len(g.headers))
	copy(headers, g.headers)
	cells := make([]cell[N], len(g.cells))
	copy(cells, g.cells)
	return headers, cells
}

func coloredItems() []ItemSpec[string] {
	return []ItemSpec[string]{
		{Item: "p", Kind: Primary},
		{Item: "q", Kind: Primary},
		{Item: "a", Kind: Secondary},
	}
}

func coloredSubsets() []SubsetSpec[string, string] {
	return []SubsetSpec[string, string]{
		{Name: "0", Constraints: []Constraint[string]{PrimaryConstraint("p"), SecondaryConstraint("a", 1)}},
		{Name: "1", Constraints: []Constraint[string]{PrimaryConstraint("p"), SecondaryConstraint("a", 2)}},
		{Name: "2", Constraints: []Constraint[string]{PrimaryConstraint("q"), SecondaryConstraint("a", 3)}},
		{Name: "3", Constraints: []Constraint[string]{PrimaryConstraint("q"), SecondaryConstraint("a", 1)}},
	}
}

// hide/unhide, cover/uncover, purify/unpurify, and commit/uncommit must
// each be byte-exact inverses of themselves, regardless of how deep
// into the search they are invoked.
func TestReversibilityOfPrimitives(t *testing.T) {
	g, err := New(coloredItems(), coloredSubsets())
	require.NoError(t, err)

	wantHeaders, wantCells := snapshot[string, string](g)

	// hide/unhide on the first body cell of item p's ring.
	p := g.cells[g.itemIndex["p"]].down
	g.hide(p)
	g.unhide(p)
	gotHeaders, gotCells := snapshot[string, string](g)
	assert.Equal(t, wantHeaders, gotHeaders)
	assert.Equal(t, wantCells, gotCells)

	// cover/uncover on item p.
	i := g.itemIndex["p"]
	g.cover(i)
	g.uncover(i)
	gotHeaders, gotCells = snapshot[string, string](g)
	assert.Equal(t, wantHeaders, gotHeaders)
	assert.Equal(t, wantCells, gotCells)

	// purify/unpurify on the first body cell touching secondary item a.
	aHeader := g.itemIndex["a"]
	aCell := g.cells[aHeader].down
	g.purify(aCell)
	g.unpurify(aCell)
	gotHeaders, gotCells = snapshot[string, string](g)
	assert.Equal(t, wantHeaders, gotHeaders)
	assert.Equal(t, wantCells, gotCells)

	// commit/uncommit dispatches to cover for a primary item and to
	// purify for a secondary one.
	g.commit(p, g.cells[p].top)
	g.uncommit(p, g.cells[p].top)
	g.commit(aCell, g.cells[aCell].top)
	g.uncommit(aCell, g.cells[aCell].top)
	gotHeaders, gotCells = snapshot[string, string](g)
	assert.Equal(t, wantHeaders, gotHeaders)
	assert.Equal(t, wantCells, gotCells)
}

// coverRemainingChoices/uncoverRemainingChoices must also round-trip,
// when used the way the search driver actually composes them: cover
// the row's own branching item first, so the row's other cells are
// already unlinked from their own items' rings before being committed
// (the same precondition chooseNextItem/exploreNextChoice establish).
func TestReversibilityOfRemainingChoices(t *testing.T) {
	g, err := New(coloredItems(), coloredSubsets())
	require.NoError(t, err)

	wantHeaders, wantCells := snapshot[string, string](g)

	i := g.itemIndex["p"]
	p := g.cells[i].down
	g.cover(i)
	g.coverRemainingChoices(p)
	g.uncoverRemainingChoices(p)
	g.uncover(i)

	gotHeaders, gotCells := snapshot[string, string](g)
	assert.Equal(t, wantHeaders, gotHeaders)
	assert.Equal(t, wantCells, gotCells)
}

// Closing a solutions iterator at any point during the search restores
// the grid to its pre-search state, so a subsequent iterator over the
// same grid produces the same solutions.
func TestGridRestorationMidSearch(t *testing.T) {
	g, err := New(classicItems(), classicSubsets())
	require.NoError(t, err)

	wantHeaders, wantCells := snapshot[string, string](g)

	it, err := g.Solutions()
	require.NoError(t, err)
	require.True(t, it.Next()) // advance partway into the search
	it.Close()

	gotHeaders, gotCells := snapshot[string, string](g)
	assert.Equal(t, wantHeaders, gotHeaders)
	assert.Equal(t, wantCells, gotCells)

	it2, err := g.Solutions()
	require.NoError(t, err)
	defer it2.Close()
	require.True(t, it2.Next())
	assert.Equal(t, []string{"1", "3"}, it2.Current().Names())
	assert.False(t, it2.Next())
}

// Closing a stepwise iterator after only a couple of partial steps also
// restores the grid.
func TestGridRestorationAfterPartialStepwise(t *testing.T) {
	g, err := New(classicItems(), classicSubsets())
	require.NoError(t, err)

	wantHeaders, wantCells := snapshot[string, string](g)

	it, err := g.StepwiseSolutions()
	require.NoError(t, err)
	require.True(t, it.Next())
	require.True(t, it.Next())
	it.Close()

	gotHeaders, gotCells := snapshot[string, string](g)
	assert.Equal(t, wantHeaders, gotHeaders)
	assert.Equal(t, wantCells, gotCells)
}
