package migration

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestRun_AppliesPendingInOrder(t *testing.T) {
	db, mock := newMock(t)
	fsys := fstest.MapFS{
		"002_b.sql": {Data: []byte("-- second\nCREATE TABLE b (id INT);\nCREATE INDEX idx_b ON b (id);\n")},
		"001_a.sql": {Data: []byte("CREATE TABLE a (id INT);")},
		"003_c.sql": {Data: []byte("CREATE TABLE c (id INT);")},
		"README.md": {Data: []byte("ignored")},
	}

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(appliedVersionsQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("001_a.sql"))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id INT)")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX idx_b ON b (id)")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(recordVersionQuery)).WithArgs("002_b.sql").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE c (id INT)")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(recordVersionQuery)).WithArgs("003_c.sql").WillReturnResult(sqlmock.NewResult(1, 1))

	applied, err := run(context.Background(), db, fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"002_b.sql", "003_c.sql"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_StopsOnFailure(t *testing.T) {
	db, mock := newMock(t)
	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("CREATE TABLE a (id INT);")},
		"002_b.sql": {Data: []byte("CREATE TABLE b (id INT);")},
	}

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(appliedVersionsQuery)).WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id INT)")).WillReturnError(errors.New("syntax error"))

	applied, err := run(context.Background(), db, fsys)
	assert.Error(t, err)
	assert.Empty(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := embedded.ReadDir("sql")
	require.NoError(t, err)
	require.Len(t, files, 3)

	content, err := embedded.ReadFile("sql/001_create_food.sql")
	require.NoError(t, err)
	stmts := statements(string(content))
	assert.Len(t, stmts, 5)
	assert.Contains(t, stmts[0], "DECIMAL(12, 2)")
}

func TestStatements(t *testing.T) {
	got := statements("-- header\nCREATE TABLE x (id INT);\n\n  ;\nCREATE INDEX i ON x (id);")
	assert.Equal(t, []string{"CREATE TABLE x (id INT)", "CREATE INDEX i ON x (id)"}, got)
}
