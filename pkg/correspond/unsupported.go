package correspond

import "errors"

// UnsupportedOperationError is the panic value raised by the
// disabled identity operations on Unsupported. It signals a
// usage mistake in the calling test code, not a runtime fault,
// and is never recovered inside this package.
type UnsupportedOperationError struct {
	// Op is the disabled operation that was invoked.
	Op string

	// Hint, if non-empty, tells the caller what to use
	// instead.
	Hint string
}

// Error returns the usage-error message.
func (e *UnsupportedOperationError) Error() string {
	msg := "correspondence " + e.Op + " is not supported"
	if e.Hint != "" {
		msg += "; " + e.Hint
	}
	return msg
}

// Is reports true for errors.ErrUnsupported, so callers can
// classify the panic value with errors.Is.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == errors.ErrUnsupported
}

// Unsupported disables identity equality and hashing for the
// correspondence variant that embeds it.
//
// Structural or identity equality between two comparison
// strategies is meaningless, and a caller reaching for it almost
// certainly meant Compare. Embedding Unsupported guards against
// that at the earliest possible point:
//
//   - The zero-size func array makes every embedding struct
//     non-comparable, so == between two concrete variants is a
//     compile error, and == between two Correspondence
//     interface values panics at runtime.
//   - Equal and Hash exist only to fail: both unconditionally
//     panic with an *UnsupportedOperationError, regardless of
//     argument.
//
// Variants must not shadow Equal or Hash with real identity
// semantics; the methods are final in spirit, enforced by review
// and by the contract tests.
type Unsupported [0]func()

// Equal always panics with an *UnsupportedOperationError. Use
// Compare to compare an actual value against an expected value.
func (Unsupported) Equal(any) bool {
	panic(&UnsupportedOperationError{
		Op: "Equal",
		Hint: "if you meant to compare values, use " +
			"Compare(actual, expected) instead",
	})
}

// Hash always panics with an *UnsupportedOperationError. Since
// equality is disabled, no hash value could be honoured either.
func (Unsupported) Hash() int {
	panic(&UnsupportedOperationError{Op: "Hash"})
}
