package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights_Compile(t *testing.T) {
	tbl, err := compileTables(DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.age.Len())
	assert.Equal(t, 4, tbl.outcome.Len())
	assert.Equal(t, 5, tbl.cancelHours.Len())
}

func TestCompileTables_BadBracket(t *testing.T) {
	w := DefaultWeights()
	w.AgeBrackets = []BracketWeight{{Lo: 65, Hi: 50, Weight: 1}}
	_, err := compileTables(w)
	assert.Error(t, err, "inverted bracket must fail")
}

func TestCompileTables_EmptyTable(t *testing.T) {
	w := DefaultWeights()
	w.Outcomes = nil
	_, err := compileTables(w)
	assert.Error(t, err, "empty outcome table must fail")
}

func TestCompileTables_UnknownCancelReason(t *testing.T) {
	w := DefaultWeights()
	w.CancelReasons = []ItemWeight{{Item: "Scheduling Conflict", Weight: 1}}
	_, err := compileTables(w)
	require.Error(t, err, "a category without detail phrases must be rejected")
	assert.Contains(t, err.Error(), "Scheduling Conflict")
}

func TestLoadWeights_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.yaml")
	content := `
outcomes:
  - item: Completed
    weight: 0.5
  - item: Cancelled
    weight: 0.5
age_brackets:
  - lo: 30
    hi: 40
    weight: 1.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	w, err := LoadWeights(path)
	require.NoError(t, err)

	assert.Len(t, w.Outcomes, 2, "outcomes overridden")
	assert.Len(t, w.AgeBrackets, 1, "age brackets overridden")
	assert.Equal(t, DefaultWeights().CancelReasons, w.CancelReasons, "untouched tables keep defaults")
}

func TestLoadWeights_Missing(t *testing.T) {
	_, err := LoadWeights(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadWeights_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outcomes: [not a map"), 0o644))

	_, err := LoadWeights(path)
	assert.Error(t, err)
}
