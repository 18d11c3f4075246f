package correspond

// From creates a Correspondence from an arbitrary predicate and
// a description of the relation it tests.
//
// The predicate must be deterministic for a fixed, unmodified
// pair of values and must have no side effects. Whether it may
// panic on inputs it cannot handle is up to the caller; the
// wrapper adds no failure behaviour of its own.
func From[A, E any](
	predicate func(actual A, expected E) bool,
	description string,
) Correspondence[A, E] {
	return funcCorrespondence[A, E]{
		predicate:   predicate,
		description: description,
	}
}

type funcCorrespondence[A, E any] struct {
	Unsupported
	predicate   func(A, E) bool
	description string
}

// Compare applies the wrapped predicate.
func (c funcCorrespondence[A, E]) Compare(
	actual A,
	expected E,
) bool {
	return c.predicate(actual, expected)
}

// Describe returns the description the correspondence was
// created with.
func (c funcCorrespondence[A, E]) Describe() string {
	return c.description
}
