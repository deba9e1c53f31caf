package xcc

// Kind classifies an item as primary (must be covered exactly once) or
// secondary (may be covered any number of times, subject to color
// agreement).
type Kind uint8

const (
	// Primary items must be covered by exactly one selected subset.
	Primary Kind = iota
	// Secondary items may be left uncovered, or covered by any number
	// of subsets provided they all agree on color.
	Secondary
)

func (k Kind) String() string {
	if k == Secondary {
		return "secondary"
	}
	return "primary"
}

// ItemSpec declares one item of the universe and its kind.
type ItemSpec[I comparable] struct {
	Item I
	Kind Kind
}

// Constraint is one (item, color) touch point within a subset. Build
// one with PrimaryConstraint or SecondaryConstraint; the zero value is
// not meaningful on its own.
type Constraint[I comparable] struct {
	item      I
	color     uint32
	secondary bool
}

// PrimaryConstraint declares that a subset covers the given primary
// item.
func PrimaryConstraint[I comparable](item I) Constraint[I] {
	return Constraint[I]{item: item}
}

// SecondaryConstraint declares that a subset touches the given
// secondary item with the given color. All selected subsets touching
// the same secondary item must agree on color.
func SecondaryConstraint[I comparable](item I, color uint32) Constraint[I] {
	return Constraint[I]{item: item, color: color, secondary: true}
}

// Item returns the constraint's item identifier.
func (c Constraint[I]) Item() I { return c.item }

// Color returns the constraint's color. Only meaningful when the
// constraint is secondary (see Secondary).
func (c Constraint[I]) Color() uint32 { return c.color }

// Secondary reports whether this is a colored, secondary-item
// constraint as opposed to a primary one.
func (c Constraint[I]) Secondary() bool { return c.secondary }

// SubsetSpec declares one named subset ("option" in Knuth's
// terminology) as a sequence of constraints.
type SubsetSpec[I comparable, N comparable] struct {
	Name        N
	Constraints []Constraint[I]
}
