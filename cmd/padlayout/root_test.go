package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	structpad "github.com/ryanavella/struct-pad"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var typeNames = []string{"PadU0", "PadU8", "PadU16", "PadU32", "PadU64", "PadUintptr"}

func TestRootText(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "OPTION SIZE")
	for _, name := range typeNames {
		assert.Contains(t, out, name)
	}
}

func decodeReport(t *testing.T, out string) report {
	t.Helper()
	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	return r
}

func TestRootYAML(t *testing.T) {
	out, err := execute(t, "--format", "yaml")
	require.NoError(t, err)

	r := decodeReport(t, out)
	assert.Equal(t, structpad.PtrSize, r.PtrSize)
	assert.Equal(t, int(structpad.CacheLineSize), r.CacheLineSize)
	require.Len(t, r.Types, len(typeNames))
	for i, name := range typeNames {
		assert.Equal(t, name, r.Types[i].Name)
		assert.True(t, r.Types[i].ZeroBits, name)
	}
	assert.Equal(t, 8, r.Types[4].Size)
	assert.Equal(t, r.Types[4].Size, r.Types[4].OptionSize)
	assert.Equal(t, 0, r.Types[0].Size)
}

func TestRootFormatFromEnv(t *testing.T) {
	t.Setenv("PADLAYOUT_FORMAT", "yaml")
	out, err := execute(t)
	require.NoError(t, err)
	assert.Len(t, decodeReport(t, out).Types, len(typeNames))
}

func TestRootFormatFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padlayout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\n"), 0o600))
	out, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Len(t, decodeReport(t, out).Types, len(typeNames))
}

func TestRootMissingConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestRootUnknownFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFormat))
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "--no-color")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(typeNames))
	for i, name := range typeNames {
		assert.Equal(t, "PASS "+name, lines[i])
	}
}

func TestCheckVerbose(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil); loggerOnce = sync.Once{} })
	_, err := execute(t, "check", "--no-color", "--verbose")
	require.NoError(t, err)
	assert.NotNil(t, Logger())
}

func TestCheckRejectsArgs(t *testing.T) {
	_, err := execute(t, "check", "extra")
	require.Error(t, err)
}

func TestRunCheckFailure(t *testing.T) {
	r := newReport()
	r.Types[2].err = &structpad.LayoutError{Name: "PadU16", Field: "size", Got: 4, Want: 2}

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	err := runCheck(cmd, settings{Format: formatText, NoColor: true}, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 6")
	assert.Contains(t, out.String(), "FAIL PadU16: structpad: PadU16 size=4 want=2")
	assert.Contains(t, out.String(), "PASS PadU8")
}
