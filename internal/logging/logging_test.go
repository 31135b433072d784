package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clipreview.log")

	l, closer, err := New("info", path)
	require.NoError(t, err)

	cl := Component(l, "tui")
	cl.Info().Str("participant", "p1").Msg("selected")
	l.Debug().Msg("hidden")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "tui", entry["cmp"])
	assert.Equal(t, "p1", entry["participant"])
	assert.Equal(t, "selected", entry["message"])
}

func TestNew_EmptyFileDiscards(t *testing.T) {
	l, closer, err := New("debug", "")
	require.NoError(t, err)
	defer closer()

	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

func TestNew_BadLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	require.NotNil(t, closer)
}
