package strategy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBank(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(
		t, os.WriteFile(path, []byte(content), 0o644),
	)
	return path
}

func TestLoadDefinitionsFromFile_YAML(t *testing.T) {
	path := writeBank(t, t.TempDir(), "bank.yaml", `
version: "1"
strategies:
  - name: close_enough
    strategy: "tolerance:0.01"
  - name: parses
    strategy: parses_to_int
`)

	loaded, err := LoadDefinitionsFromFile(NewRegistry(), path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	closeEnough := loaded["close_enough"]
	require.NotNil(t, closeEnough)
	assert.True(t, closeEnough.Compare(1.00, 1.005))
	assert.False(t, closeEnough.Compare(1.00, 1.02))

	parses := loaded["parses"]
	require.NotNil(t, parses)
	assert.True(t, parses.Compare("123", 123))
	assert.False(t, parses.Compare("abc", 123))
	assert.Equal(t, "parses to", parses.Describe())
}

func TestLoadDefinitionsFromFile_JSON(t *testing.T) {
	path := writeBank(t, t.TempDir(), "bank.json", `{
  "version": "1",
  "strategies": [
    {"name": "same_text", "strategy": "equal_fold"}
  ]
}`)

	loaded, err := LoadDefinitionsFromFile(NewRegistry(), path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	assert.True(t, loaded["same_text"].Compare("Foo", "fOO"))
}

func TestLoadDefinitionsFromFile_DescriptionOverride(t *testing.T) {
	path := writeBank(t, t.TempDir(), "bank.yaml", `
strategies:
  - name: close_enough
    strategy: "tolerance:0.01"
    description: is approximately
`)

	loaded, err := LoadDefinitionsFromFile(NewRegistry(), path)
	require.NoError(t, err)

	c := loaded["close_enough"]
	require.NotNil(t, c)
	assert.Equal(t, "is approximately", c.Describe())
	assert.True(t, c.Compare(1.00, 1.005))
}

func TestLoadDefinitionsFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errText string
	}{
		{
			"unknown strategy",
			"bank.yaml",
			"strategies:\n" +
				"  - name: x\n" +
				"    strategy: nonexistent\n",
			"unknown strategy",
		},
		{
			"missing name",
			"bank.yaml",
			"strategies:\n" +
				"  - strategy: parses_to_int\n",
			"no name",
		},
		{
			"missing strategy",
			"bank.yaml",
			"strategies:\n" +
				"  - name: x\n",
			"no strategy",
		},
		{
			"duplicate name",
			"bank.yaml",
			"strategies:\n" +
				"  - name: x\n" +
				"    strategy: parses_to_int\n" +
				"  - name: x\n" +
				"    strategy: deep_equal\n",
			"duplicate definition",
		},
		{
			"malformed yaml",
			"bank.yaml",
			"strategies: [unclosed",
			"failed to parse",
		},
		{
			"malformed json",
			"bank.json",
			"{not json",
			"failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeBank(
				t, t.TempDir(), tt.file, tt.content,
			)

			_, err := LoadDefinitionsFromFile(
				NewRegistry(), path,
			)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadDefinitionsFromFile_MissingFile(t *testing.T) {
	_, err := LoadDefinitionsFromFile(
		NewRegistry(),
		filepath.Join(t.TempDir(), "missing.yaml"),
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadDefinitionsFromDir(t *testing.T) {
	dir := t.TempDir()

	writeBank(t, dir, "numeric.yaml", `
strategies:
  - name: close_enough
    strategy: "tolerance:0.01"
`)
	writeBank(t, dir, "text.json", `{
  "strategies": [
    {"name": "same_text", "strategy": "equal_fold"}
  ]
}`)
	writeBank(t, dir, "notes.txt", "not a bank file")

	loaded, err := LoadDefinitionsFromDir(NewRegistry(), dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.NotNil(t, loaded["close_enough"])
	assert.NotNil(t, loaded["same_text"])
}

func TestLoadDefinitionsFromDir_DuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()

	writeBank(t, dir, "a.yaml",
		"strategies:\n"+
			"  - name: x\n"+
			"    strategy: parses_to_int\n")
	writeBank(t, dir, "b.yaml",
		"strategies:\n"+
			"  - name: x\n"+
			"    strategy: deep_equal\n")

	_, err := LoadDefinitionsFromDir(NewRegistry(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate definition")
}

func TestLoadDefinitionsFromDir_MissingDir(t *testing.T) {
	_, err := LoadDefinitionsFromDir(
		NewRegistry(),
		filepath.Join(t.TempDir(), "missing"),
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read directory")
}
