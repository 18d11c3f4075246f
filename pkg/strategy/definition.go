// Package strategy provides named registration and declarative
// configuration of correspondence strategies. It resolves
// compact strategy strings and JSON/YAML definition banks into
// ready-to-use correspondences; it performs no matching itself.
package strategy

// Definition describes a single named correspondence strategy in
// a definition bank file.
type Definition struct {
	// Name is the unique name the resolved correspondence is
	// keyed by.
	Name string `json:"name" yaml:"name"`

	// Strategy is the compact strategy string, e.g.
	// "tolerance:0.01" or "parses_to_int".
	Strategy string `json:"strategy" yaml:"strategy"`

	// Description, if non-empty, overrides the strategy's own
	// relation text in failure messages.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
