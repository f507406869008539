package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads file content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "grid.csv")
		require.NoError(t, os.WriteFile(path, []byte("1,2\r\n3,4\r\n"), 0644))

		text, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "1,2\r\n3,4\r\n", text)
	})

	t.Run("missing file yields ErrNotFound", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank file yields ErrEmpty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blank.csv")
		require.NoError(t, os.WriteFile(path, []byte(" \r\n\t\r\n"), 0644))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrEmpty)
	})
}

func TestSplitRows(t *testing.T) {
	t.Parallel()

	t.Run("splits on CRLF", func(t *testing.T) {
		rows := SplitRows("1,2\r\n3,4")
		assert.Equal(t, []string{"1,2", "3,4"}, rows)
	})

	t.Run("trailing newline does not add an empty row", func(t *testing.T) {
		rows := SplitRows("1,2\r\n3,4\r\n")
		assert.Equal(t, []string{"1,2", "3,4"}, rows)
	})

	t.Run("tolerates LF-only input", func(t *testing.T) {
		rows := SplitRows("1,2\n3,4\n")
		assert.Equal(t, []string{"1,2", "3,4"}, rows)
	})
}
