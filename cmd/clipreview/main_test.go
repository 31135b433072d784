package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pengelbrecht/clipreview/internal/config"
	"github.com/pengelbrecht/clipreview/internal/research"
)

// isolate keeps the test away from the user's config and the network.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("CLIPREVIEW_UPDATE__CHECK", "false")
	t.Chdir(dir)
	return dir
}

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

// TestFlagRegistration tests that the CLI flags are registered on every command.
func TestFlagRegistration(t *testing.T) {
	root := newRootCmd()

	tests := []struct {
		name string
		def  string
	}{
		{"config", ""},
		{"data", ""},
		{"log-level", "info"},
		{"log-file", ""},
		{"list-width", "40"},
		{"tab", "results"},
	}

	for _, tt := range tests {
		flag := root.PersistentFlags().Lookup(tt.name)
		if flag == nil {
			t.Errorf("--%s flag not registered", tt.name)
			continue
		}
		if flag.DefValue != tt.def {
			t.Errorf("--%s default value = %q, want %q", tt.name, flag.DefValue, tt.def)
		}
	}

	for _, name := range []string{"dump", "version", "upgrade"} {
		if _, _, err := root.Find([]string{name}); err != nil {
			t.Errorf("subcommand %q not found: %v", name, err)
		}
	}
}

func TestDumpSampleData(t *testing.T) {
	isolate(t)

	out, err := execute(t, "dump")
	require.NoError(t, err)

	ds, err := research.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, research.Fixtures(), ds)
}

func TestDumpDataFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
blocks:
  - id: b1
    title: Checkout flow
participants:
  - id: p1
    participant_id: "101"
    status: completed
    responses:
      - type: transcript
        timestamp: "0:01"
        text: Hello
`), 0o644))

	out, err := execute(t, "dump", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Checkout flow")
	assert.Contains(t, out, "type: transcript")
}

func TestDumpDataFileFromConfig(t *testing.T) {
	dir := isolate(t)

	data := filepath.Join(dir, "study.yaml")
	require.NoError(t, os.WriteFile(data, []byte("blocks:\n  - id: only\n    title: From config\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clipreview.yaml"), []byte("data: "+data+"\n"), 0o644))

	out, err := execute(t, "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "From config")
}

func TestDumpMissingDataFile(t *testing.T) {
	isolate(t)

	_, err := execute(t, "dump", "--data", "does-not-exist.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestInvalidConfig(t *testing.T) {
	isolate(t)

	_, err := execute(t, "dump", "--tab", "insights")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "clipreview dev\n", out)
}

func TestLoadDataset(t *testing.T) {
	ds, err := loadDataset("")
	require.NoError(t, err)
	assert.Len(t, ds.Participants, 3)
}
