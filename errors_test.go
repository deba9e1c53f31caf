package xcc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDuplicateItem(t *testing.T) {
	items := []ItemSpec[string]{
		{Item: "a", Kind: Primary},
		{Item: "a", Kind: Primary},
	}
	_, err := New[string, string](items, nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateItem))
}

func TestNewDuplicateSubsetName(t *testing.T) {
	items := primaryItems("a")
	subsets := []SubsetSpec[string, string]{
		subset("x", "a"),
		subset("x", "a"),
	}
	_, err := New(items, subsets)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateSubsetName))
}

func TestNewUnknownItem(t *testing.T) {
	items := primaryItems("a")
	subsets := []SubsetSpec[string, string]{subset("x", "b")}
	_, err := New(items, subsets)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownItem))
}

func TestNewKindMismatch(t *testing.T) {
	items := []ItemSpec[string]{{Item: "a", Kind: Primary}}
	subsets := []SubsetSpec[string, string]{
		{Name: "x", Constraints: []Constraint[string]{SecondaryConstraint("a", 0)}},
	}
	_, err := New(items, subsets)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrKindMismatch))
}

func TestGridBusyRejectsConcurrentIterator(t *testing.T) {
	g, err := New(classicItems(), classicSubsets())
	assert.NoError(t, err)

	it, err := g.Solutions()
	assert.NoError(t, err)
	defer it.Close()

	_, err = g.Solutions()
	assert.True(t, errors.Is(err, ErrGridBusy))

	_, err = g.StepwiseSolutions()
	assert.True(t, errors.Is(err, ErrGridBusy))
}

func TestGridReusableAfterClose(t *testing.T) {
	g, err := New(classicItems(), classicSubsets())
	assert.NoError(t, err)

	it1, err := g.Solutions()
	assert.NoError(t, err)
	it1.Close()

	it2, err := g.Solutions()
	assert.NoError(t, err)
	defer it2.Close()
	assert.True(t, it2.Next())
}
