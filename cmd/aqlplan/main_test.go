package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayneri/aqlplan/internal/planner"
	"github.com/bayneri/aqlplan/internal/sampling"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const directSpec = `apiVersion: aqlplan.dev/v1
kind: InspectionPlan
metadata:
  name: incoming-fasteners
lot:
  size: 2000
inspection:
  level: II
  aql: 1.5
`

func TestCalcDirectDefaults(t *testing.T) {
	out, err := execute(t, "calc", "--plain", "--lot-size", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "Inspection level: II")
	assert.Contains(t, out, "AQL: 1.5%")
	assert.Contains(t, out, "Strategy: direct / tiered")
	assert.Contains(t, out, "Sample size: 12500")
	assert.Contains(t, out, "Accept (Ac): 187")
	assert.Contains(t, out, "Reject (Re): 188")
}

func TestCalcCodeLetterJSON(t *testing.T) {
	out, err := execute(t, "calc", "--lot-size", "500", "--level", "GII", "--aql", "2.5",
		"--classification", "code-letter", "--defects", "1", "--json")
	require.NoError(t, err)

	var plan planner.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "F", plan.CodeLetter)
	assert.Equal(t, 32, plan.SampleSize)
	assert.Equal(t, 1, plan.AcceptNumber)
	assert.Equal(t, 2, plan.RejectNumber)
	assert.EqualValues(t, "ACCEPT", plan.Verdict)
	assert.Contains(t, out, "defects are <= 1.")
	assert.NotContains(t, out, `\u003c`)
}

func TestCalcCodeLetterDefaultLevel(t *testing.T) {
	out, err := execute(t, "calc", "--lot-size", "500", "--aql", "2.5",
		"--classification", "code-letter", "--json")
	require.NoError(t, err)

	var plan planner.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "GII", plan.Level)
	assert.Equal(t, "F", plan.CodeLetter)
}

func TestCalcFailOnReject(t *testing.T) {
	out, err := execute(t, "calc", "--plain", "--lot-size", "500", "--level", "GII", "--aql", "2.5",
		"--classification", "code-letter", "--defects", "2", "--fail-on-reject")
	require.Error(t, err)
	assert.Equal(t, exitCodeRejected, exitCode(err))
	assert.Contains(t, out, "Verdict: REJECT")
}

func TestCalcRequiresLotSize(t *testing.T) {
	_, err := execute(t, "calc", "--level", "II")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--lot-size is required")
}

func TestCalcInvalidLevel(t *testing.T) {
	_, err := execute(t, "calc", "--lot-size", "100", "--level", "XYZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sampling.ErrInvalidLevel), "got %v", err)
	assert.Equal(t, 1, exitCode(err))
}

func TestCalcUsesConfigFile(t *testing.T) {
	cfg := writeFile(t, "aqlplan.yaml", "classification: code-letter\nlevel: GIII\naql: 0.65\n")
	out, err := execute(t, "calc", "--plain", "--config", cfg, "--lot-size", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Code letter: D")
	assert.Contains(t, out, "Sample size: 13")
	assert.Contains(t, out, "Strategy: code-letter / rounding")
}

func TestCalcFlagBeatsConfigFile(t *testing.T) {
	cfg := writeFile(t, "aqlplan.yaml", "level: III\n")
	out, err := execute(t, "calc", "--plain", "--config", cfg, "--lot-size", "10", "--level", "S-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Inspection level: S-1")
	assert.Contains(t, out, "Sample size: 3")
}

func TestPlanFromFile(t *testing.T) {
	path := writeFile(t, "inspection.yaml", directSpec)
	out, err := execute(t, "plan", "--plain", "-f", path, "--defects", "188", "--labels", "line=b")
	require.NoError(t, err)
	assert.Contains(t, out, "Plan: incoming-fasteners")
	assert.Contains(t, out, "Labels: line=b")
	assert.Contains(t, out, "Verdict: REJECT")
}

func TestPlanRequiresFile(t *testing.T) {
	_, err := execute(t, "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-f is required")
}

func TestValidate(t *testing.T) {
	path := writeFile(t, "inspection.yaml", directSpec)
	out, err := execute(t, "validate", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "Spec is valid.\n", out)

	bad := writeFile(t, "bad.yaml", strings.Replace(directSpec, "aql: 1.5", "aql: 3.0", 1))
	_, err = execute(t, "validate", "-f", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a standard AQL")
}

func TestReportWritesFiles(t *testing.T) {
	path := writeFile(t, "inspection.yaml", directSpec)
	outDir := filepath.Join(t.TempDir(), "report")
	out, err := execute(t, "report", "-f", path, "--out", outDir, "--format", "json", "--explain")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote report to")

	_, err = os.Stat(filepath.Join(outDir, "summary.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "summary.md"))
	assert.True(t, os.IsNotExist(err), "markdown should not be written for --format json")
}

func TestTables(t *testing.T) {
	out, err := execute(t, "tables", "code-letters")
	require.NoError(t, err)
	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "P")

	out, err = execute(t, "tables", "lot-ranges", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "lot-ranges:")
	assert.Contains(t, out, "high: inf")

	out, err = execute(t, "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "REF_REJECT")

	_, err = execute(t, "tables", "sizes")
	require.Error(t, err)
}

func TestExplain(t *testing.T) {
	out, err := execute(t, "explain", "code-letters")
	require.NoError(t, err)
	assert.Contains(t, out, "I and O are never used")

	_, err = execute(t, "explain")
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "not found, using built-in defaults")
	assert.Contains(t, out, "level: II")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestBadLogLevel(t *testing.T) {
	_, err := execute(t, "version", "--loglevel", "loud")
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, []string{"md", "json"}, parseFormat(""))
	assert.Equal(t, []string{"md", "json"}, parseFormat(" , "))
	assert.Equal(t, []string{"json"}, parseFormat("JSON"))
}
