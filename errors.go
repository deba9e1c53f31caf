package xcc

import "github.com/pkg/errors"

// Sentinel construction errors. Callers should match against these with
// errors.Is; the returned error additionally carries the offending
// item/name for a human-readable message.
var (
	// ErrDuplicateItem is returned when the same item identifier is
	// declared more than once.
	ErrDuplicateItem = errors.New("duplicate item")

	// ErrDuplicateSubsetName is returned when the same subset name is
	// declared more than once.
	ErrDuplicateSubsetName = errors.New("duplicate subset name")

	// ErrUnknownItem is returned when a constraint references an item
	// that was never declared.
	ErrUnknownItem = errors.New("unknown item")

	// ErrKindMismatch is returned when a constraint's kind (primary vs.
	// secondary) disagrees with the declared kind of its item.
	ErrKindMismatch = errors.New("primary/secondary kind mismatch")

	// ErrGridBusy is returned when a second iterator is requested over a
	// grid that already has one in flight. Only one iterator may be
	// live per grid at a time (see package-level concurrency note on
	// Grid).
	ErrGridBusy = errors.New("grid already has a live iterator")
)
