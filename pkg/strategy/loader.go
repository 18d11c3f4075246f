package strategy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.correspond/pkg/correspond"
)

// bankFile is the on-disk structure for a strategy definition
// bank (JSON or YAML).
type bankFile struct {
	Version    string       `json:"version" yaml:"version"`
	Strategies []Definition `json:"strategies" yaml:"strategies"`
}

// LoadDefinitionsFromFile reads a JSON or YAML file containing a
// bank of strategy definitions and resolves each one against the
// given registry. The format is chosen by file extension; .yaml
// and .yml are parsed as YAML, everything else as JSON. The
// result maps each definition's name to its resolved
// correspondence.
func LoadDefinitionsFromFile(
	reg Registry,
	path string,
) (map[string]correspond.Correspondence[any, any], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read definitions file %s: %w",
			path, err,
		)
	}

	var bank bankFile
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(data, &bank)
	} else {
		err = json.Unmarshal(data, &bank)
	}
	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse definitions from %s: %w",
			path, err,
		)
	}

	out := make(
		map[string]correspond.Correspondence[any, any],
		len(bank.Strategies),
	)
	for i := range bank.Strategies {
		def := &bank.Strategies[i]

		c, err := resolveDefinition(reg, def)
		if err != nil {
			return nil, fmt.Errorf(
				"definition %q from %s: %w",
				def.Name, path, err,
			)
		}

		if _, exists := out[def.Name]; exists {
			return nil, fmt.Errorf(
				"duplicate definition %q in %s",
				def.Name, path,
			)
		}
		out[def.Name] = c
	}

	return out, nil
}

// LoadDefinitionsFromDir loads all .json and .yaml/.yml
// definition bank files from a directory and merges them. It
// does not recurse into subdirectories. Definition names must be
// unique across all files in the directory.
func LoadDefinitionsFromDir(
	reg Registry,
	dir string,
) (map[string]correspond.Correspondence[any, any], error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	out := make(map[string]correspond.Correspondence[any, any])
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		loaded, err := LoadDefinitionsFromFile(reg, p)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}

		for name, c := range loaded {
			if _, exists := out[name]; exists {
				return nil, fmt.Errorf(
					"duplicate definition %q in %s",
					name, p,
				)
			}
			out[name] = c
		}
	}

	return out, nil
}

// resolveDefinition validates a definition and resolves it into
// a correspondence, applying the description override if one is
// set.
func resolveDefinition(
	reg Registry,
	def *Definition,
) (correspond.Correspondence[any, any], error) {
	if def.Name == "" {
		return nil, fmt.Errorf("definition has no name")
	}
	if def.Strategy == "" {
		return nil, fmt.Errorf("definition has no strategy")
	}

	c, err := ResolveString(reg, def.Strategy)
	if err != nil {
		return nil, err
	}

	if def.Description != "" {
		c = correspond.From(c.Compare, def.Description)
	}

	return c, nil
}
