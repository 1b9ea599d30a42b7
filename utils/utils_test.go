package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProgressBar(t *testing.T) {
	bar := CreateProgressBar(0.5, 10, "")
	assert.Equal(t, strings.Repeat("█", 5)+strings.Repeat("░", 5), bar)

	assert.Equal(t, strings.Repeat("█", 8), CreateProgressBar(1.7, 8, ""))
	assert.Equal(t, "50%", CreateProgressBar(0.5, 3, ""))
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "Escr...", TruncateString("Escritório", 7))
	assert.Equal(t, "Sotão", TruncateString("Sotão", 5))
	assert.Equal(t, "Sotão  |", PadRight("Sotão", 7)+"|")
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("mansion.yaml", CaseFileExtensions))
	assert.True(t, HasExtension("FARM.YML", CaseFileExtensions))
	assert.False(t, HasExtension("notes.txt", CaseFileExtensions))
}

func TestCompleteFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"mansion.yaml", "manor.yml", "map.txt", ".hidden.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "maps"), 0755))

	complete := CompleteFilesByExtension(CaseFileExtensions)
	got, directive := complete(&cobra.Command{}, nil, dir+string(filepath.Separator)+"ma")

	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, []string{
		filepath.Join(dir, "manor.yml"),
		filepath.Join(dir, "mansion.yaml"),
		filepath.Join(dir, "maps") + "/",
	}, got)
}
