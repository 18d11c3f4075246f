package strategy

import (
	"strings"

	"digital.vasic.correspond/pkg/correspond"
)

// ParseStrategyString parses a compact strategy string of the
// form "name:arg" into its components. If no colon is present
// the entire string is treated as the name and arg is empty.
//
// Examples:
//
//	"tolerance:0.01" -> ("tolerance", "0.01")
//	"parses_to_int"  -> ("parses_to_int", "")
func ParseStrategyString(
	s string,
) (name string, arg string) {
	parts := strings.SplitN(s, ":", 2)
	name = parts[0]

	if len(parts) > 1 {
		arg = parts[1]
	}

	return
}

// ResolveString parses a compact strategy string and resolves it
// against the given registry.
func ResolveString(
	reg Registry,
	s string,
) (correspond.Correspondence[any, any], error) {
	name, arg := ParseStrategyString(s)
	return reg.Resolve(name, arg)
}
