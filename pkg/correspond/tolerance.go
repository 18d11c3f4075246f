package correspond

import (
	"fmt"
	"math"
)

// Tolerance creates a Correspondence between two float64 values
// that considers them to correspond if the absolute difference
// between them does not exceed tolerance.
//
// Tolerance panics if tolerance is negative or NaN; that is a
// configuration error, not a comparison outcome. Compare itself
// never fails: NaN or infinite operands simply do not
// correspond to anything, including themselves.
func Tolerance(tolerance float64) Correspondence[float64, float64] {
	if math.IsNaN(tolerance) || tolerance < 0 {
		panic(fmt.Sprintf(
			"correspond: tolerance must be a non-negative "+
				"finite number, got %v", tolerance,
		))
	}
	return toleranceCorrespondence{tolerance: tolerance}
}

type toleranceCorrespondence struct {
	Unsupported
	tolerance float64
}

// Compare reports whether |actual - expected| <= tolerance.
func (c toleranceCorrespondence) Compare(
	actual float64,
	expected float64,
) bool {
	if math.IsNaN(actual) || math.IsNaN(expected) {
		return false
	}
	return math.Abs(actual-expected) <= c.tolerance
}

// Describe returns the relation text with the configured
// tolerance embedded.
func (c toleranceCorrespondence) Describe() string {
	return fmt.Sprintf(
		"is a finite number within %v of", c.tolerance,
	)
}
