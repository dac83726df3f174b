package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "calc.db")
		db, err := OpenSQLite(path)
		require.NoError(t, err)
		defer db.Close()

		var mode string
		require.NoError(t, db.QueryRow("PRAGMA journal_mode;").Scan(&mode))
		assert.Equal(t, "wal", mode)

		var timeout int
		require.NoError(t, db.QueryRow("PRAGMA busy_timeout;").Scan(&timeout))
		assert.Equal(t, 5000, timeout)

		assert.FileExists(t, path)
	})

	t.Run("in memory", func(t *testing.T) {
		db, err := OpenSQLite(":memory:")
		require.NoError(t, err)
		defer db.Close()

		_, err = db.Exec("CREATE TABLE t (v TEXT)")
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO t (v) VALUES ('x')")
		require.NoError(t, err)

		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM t").Scan(&n))
		assert.Equal(t, 1, n)
	})
}
