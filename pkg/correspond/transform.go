package correspond

// Transforming creates a Correspondence that applies transform
// to the actual value and then compares the result against the
// expected value with ==.
//
// The transform must be deterministic and side-effect free. Any
// failure behaviour inside the transform is the caller's;
// the wrapper adds none.
func Transforming[A any, E comparable](
	transform func(A) E,
	description string,
) Correspondence[A, E] {
	return transformingCorrespondence[A, E]{
		transform:   transform,
		description: description,
	}
}

type transformingCorrespondence[A any, E comparable] struct {
	Unsupported
	transform   func(A) E
	description string
}

// Compare reports whether transform(actual) == expected.
func (c transformingCorrespondence[A, E]) Compare(
	actual A,
	expected E,
) bool {
	return c.transform(actual) == expected
}

// Describe returns the description the correspondence was
// created with.
func (c transformingCorrespondence[A, E]) Describe() string {
	return c.description
}
