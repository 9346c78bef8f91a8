package logging

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_CreatesServiceLogFile(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(origDir) })

	logger, err := InitLogger("test")
	require.NoError(t, err)

	logger.Debug("debug entry lands in the file only")
	logger.Sync()

	entries, err := os.ReadDir("logs")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Name()
	assert.True(t, strings.HasPrefix(name, "surveyor-rota_test_"), "got %s", name)
	assert.True(t, strings.HasSuffix(name, ".log"), "got %s", name)

	content, err := os.ReadFile("logs/" + name)
	require.NoError(t, err)
	assert.Contains(t, string(content), "debug entry lands in the file only")
}
