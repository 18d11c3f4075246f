package strategy

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"digital.vasic.correspond/pkg/correspond"
)

// buildTolerance builds the "tolerance" strategy. The argument
// is the tolerance value; values within it of each other
// correspond. Non-numeric operands do not correspond.
func buildTolerance(
	arg string,
) (correspond.Correspondence[any, any], error) {
	if arg == "" {
		return nil, fmt.Errorf(
			"tolerance strategy requires a numeric argument",
		)
	}

	tolerance, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, fmt.Errorf(
			"invalid tolerance %q: %w", arg, err,
		)
	}
	if math.IsNaN(tolerance) || tolerance < 0 {
		return nil, fmt.Errorf(
			"tolerance must be a non-negative finite "+
				"number, got %s", arg,
		)
	}

	inner := correspond.Tolerance(tolerance)

	return correspond.From(func(actual, expected any) bool {
		a, ok := toFloat64(actual)
		if !ok {
			return false
		}
		e, ok := toFloat64(expected)
		if !ok {
			return false
		}
		return inner.Compare(a, e)
	}, inner.Describe()), nil
}

// buildParsesToInt builds the "parses_to_int" strategy: a string
// actual corresponds to an integer expected it parses to.
func buildParsesToInt(
	arg string,
) (correspond.Correspondence[any, any], error) {
	if arg != "" {
		return nil, fmt.Errorf(
			"parses_to_int strategy takes no argument, got %q",
			arg,
		)
	}

	inner := correspond.ParsesToInt()

	return correspond.From(func(actual, expected any) bool {
		s, ok := actual.(string)
		if !ok {
			return false
		}
		n, ok := toInt(expected)
		if !ok {
			return false
		}
		return inner.Compare(s, n)
	}, inner.Describe()), nil
}

// buildDeepEqual builds the "deep_equal" strategy, comparing
// values with reflect.DeepEqual.
func buildDeepEqual(
	arg string,
) (correspond.Correspondence[any, any], error) {
	if arg != "" {
		return nil, fmt.Errorf(
			"deep_equal strategy takes no argument, got %q",
			arg,
		)
	}

	return correspond.From(func(actual, expected any) bool {
		return reflect.DeepEqual(actual, expected)
	}, "is deep-equal to"), nil
}

// buildEqualFold builds the "equal_fold" strategy: two strings
// correspond if they are equal under Unicode case-folding.
func buildEqualFold(
	arg string,
) (correspond.Correspondence[any, any], error) {
	if arg != "" {
		return nil, fmt.Errorf(
			"equal_fold strategy takes no argument, got %q",
			arg,
		)
	}

	return correspond.From(func(actual, expected any) bool {
		a, ok := actual.(string)
		if !ok {
			return false
		}
		e, ok := expected.(string)
		if !ok {
			return false
		}
		return strings.EqualFold(a, e)
	}, "is case-insensitively equal to"), nil
}

// --- helpers ---

// toFloat64 converts an any value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// toInt converts an any value to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
