// Package correspond defines pairwise comparison contracts used
// by test assertions to express custom equality notions, such as
// approximate numeric equality or parse-then-compare. It ships
// with a small set of built-in variants and supports arbitrary
// predicates via From.
package correspond

// Correspondence determines whether a value of type A corresponds
// in some way to a value of type E. The A values are typically
// actual values produced by the code under test; the E values are
// the expected values the test compares them against. A and E are
// independent types and need not be related in any way.
//
// A correspondence is required to be consistent: for any given
// pair of values, repeated calls to Compare must return the same
// boolean as long as neither value is modified. It is not
// required to be reflexive, symmetric, or transitive. Compare
// must be a pure predicate with no side effects, which also makes
// instances safe for concurrent use provided any configuration
// they close over stays immutable.
//
// Identity equality between correspondence values is deliberately
// disabled; see Unsupported.
type Correspondence[A, E any] interface {
	// Compare reports whether the actual value is said to
	// correspond to the expected value for the purposes of
	// the test.
	Compare(actual A, expected E) bool

	// Describe returns a short human-readable fragment naming
	// the relation, suitable to fill the gap in a failure
	// message of the form "not true that <[foo, 123, bar]>
	// contains exactly elements which ... <[123, 456]>". For
	// example, a Correspondence[string, int] that tests
	// whether the actual string parses to the expected
	// integer returns "parses to". The text must be non-empty
	// and stable across calls on the same instance.
	Describe() string
}
