package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Choovyy/portfolio/internal/content"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	exportOutput = ""
	t.Cleanup(func() { exportOutput = "" })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExportResume(t *testing.T) {
	out, err := runCLI(t, "export", "resume")
	require.NoError(t, err)
	assert.Equal(t, content.Resume, out)
}

func TestExportProject(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "export", "project", "Surplus Funds API", "-o", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Surplus Funds API.txt"))
	require.NoError(t, err)
	assert.Equal(t, "RESTful API managing surplus funds lifecycle with validation and business rules.", string(data))
}

func TestExportProject_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	_, err := runCLI(t, "export", "project", "Lead Intake System", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Multi-table relational intake system")
}

func TestExportProject_Unknown(t *testing.T) {
	_, err := runCLI(t, "export", "project", "Nope")
	assert.ErrorContains(t, err, `no project titled "Nope"`)
}
