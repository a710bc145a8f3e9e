package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/locafleet/backend/migrations"
	"github.com/locafleet/backend/testutil"
)

// TestMain runs before any test in the repo_test package.
// It applies all pending migrations to the test database so individual tests
// never need to think about schema state.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured, every test skips itself via testutil.NewPool.
		os.Exit(m.Run())
	}

	// goose needs a plain *sql.DB, not a pgx pool. We construct it manually
	// here because TestMain has no *testing.T to pass to testutil helpers.
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}

// beginTx opens a transaction against the test database that is rolled back
// when the test finishes, giving free per-test isolation. Repos under test are
// constructed on top of this transaction.
func beginTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// lastID returns the highest id in the given table, i.e. the id assigned to
// the most recent insert made inside the test transaction. The repos' Save
// methods report affected rows rather than the generated key, so tests fetch
// it here.
func lastID(t *testing.T, tx pgx.Tx, table string) int64 {
	t.Helper()

	var id int64
	err := tx.QueryRow(context.Background(), "SELECT max(id) FROM "+table).Scan(&id)
	require.NoError(t, err, "query last id")
	return id
}
