package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteImageNames(t *testing.T) {
	dir := isolate(t)
	for _, name := range []string{"FloppyDisk.json", "backup.json", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}
	cmd := &cobra.Command{}

	t.Run("returns every image for empty input", func(t *testing.T) {
		completions, directive := completeImageNames(cmd, nil, "")
		assert.ElementsMatch(t, []string{"FloppyDisk.json", "backup.json"}, completions)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})

	t.Run("filters by prefix", func(t *testing.T) {
		completions, _ := completeImageNames(cmd, nil, "ba")
		assert.Equal(t, []string{"backup.json"}, completions)
	})

	t.Run("returns empty for non-matching prefix", func(t *testing.T) {
		completions, _ := completeImageNames(cmd, nil, "xyz")
		assert.Empty(t, completions)
	})
}

func TestFilterPrefix(t *testing.T) {
	assert.Equal(t, []string{"ab", "abc"}, filterPrefix([]string{"ab", "b", "abc"}, "ab"))
	assert.Nil(t, filterPrefix([]string{"a"}, "z"))
}
