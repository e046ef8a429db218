package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesSchema(t *testing.T) {
	testDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer testDB.Close()

	require.NoError(t, Migrate(testDB, nil))

	// nodes and edges tables must exist and accept rows
	_, err = testDB.Exec(`INSERT INTO nodes (id, data) VALUES (?, ?)`, "n1", `{"label":"N1"}`)
	require.NoError(t, err)

	_, err = testDB.Exec(`INSERT INTO edges (source, target, label, weight) VALUES (?, ?, ?, ?)`,
		"n1", "n2", "linksTo", 1.0)
	require.NoError(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	testDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer testDB.Close()

	require.NoError(t, Migrate(testDB, nil))
	require.NoError(t, Migrate(testDB, nil))

	var count int
	err = testDB.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	require.Greater(t, count, 0)
}

func TestOpenAndMigrateFile(t *testing.T) {
	path := t.TempDir() + "/owlet-test.db"

	database, err := Open(path, nil)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database, nil))

	// Edge primary key is (source, target): duplicate insert must fail
	_, err = database.Exec(`INSERT INTO edges (source, target) VALUES ('a', 'b')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO edges (source, target) VALUES ('a', 'b')`)
	require.Error(t, err)
}
