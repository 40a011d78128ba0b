package sinks

import (
	"context"
	"errors"
	"testing"

	migrator "github.com/cybertec-postgresql/pgx-migrator"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetsync/sheetsync/internal/metrics"
	"github.com/sheetsync/sheetsync/internal/testutil"
)

// expectMigration registers the statements of a fresh migration run
func expectMigration(conn pgxmock.PgxPoolIface, applied int) {
	conn.ExpectExec(`CREATE TABLE IF NOT EXISTS sheetsync\.migration`).WillReturnResult(pgxmock.NewResult("CREATE", 1))
	conn.ExpectQuery(`SELECT count`).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(applied))
	if applied > 0 {
		return
	}
	conn.ExpectBegin()
	conn.ExpectExec(`CREATE TABLE sheetsync\.metric`).WillReturnResult(pgxmock.NewResult("CREATE", 1))
	conn.ExpectExec(`INSERT INTO`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	conn.ExpectCommit()
}

func TestNewWriterFromPostgresConn(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)

	conn.ExpectPing()
	conn.ExpectQuery("SELECT EXISTS").WithArgs("sheetsync").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	conn.ExpectExec("CREATE SCHEMA sheetsync").WillReturnResult(pgxmock.NewResult("CREATE", 1))
	expectMigration(conn, 0)

	pgw, err := NewWriterFromPostgresConn(ctx, conn)
	assert.NoError(t, err)
	assert.NotNil(t, pgw)
	assert.NoError(t, conn.ExpectationsWereMet())

	conn.ExpectPing()
	conn.ExpectQuery("SELECT EXISTS").WithArgs("sheetsync").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	expectMigration(conn, 1)
	pgw, err = NewWriterFromPostgresConn(ctx, conn)
	assert.NoError(t, err, "existing schema is reused")
	assert.NotNil(t, pgw)
	assert.NoError(t, conn.ExpectationsWereMet())

	conn.ExpectPing()
	conn.ExpectQuery("SELECT EXISTS").WithArgs("sheetsync").WillReturnError(errors.New("permission denied"))
	pgw, err = NewWriterFromPostgresConn(ctx, conn)
	assert.Error(t, err)
	assert.Nil(t, pgw)
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestPostgresWriterMigrate(t *testing.T) {
	a := assert.New(t)
	conn, err := pgxmock.NewPool()
	a.NoError(err)

	expectMigration(conn, 0)
	pgw := &PostgresWriter{ctx: ctx, sinkDb: conn}
	a.NoError(pgw.Migrate())
	a.NoError(conn.ExpectationsWereMet())

	conn.ExpectExec(`CREATE TABLE IF NOT EXISTS sheetsync\.migration`).WillReturnResult(pgxmock.NewResult("CREATE", 1))
	conn.ExpectQuery(`SELECT count`).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	conn.ExpectBegin()
	conn.ExpectExec(`CREATE TABLE sheetsync\.metric`).WillReturnError(errors.New("permission denied"))
	a.Error(pgw.Migrate(), "failed migration is reported")
}

func TestPostgresWriterMigrateFail(t *testing.T) {
	oldInitMigrator := initMigrator
	t.Cleanup(func() {
		initMigrator = oldInitMigrator
	})
	a := assert.New(t)
	pgw := &PostgresWriter{ctx: ctx}
	initMigrator = func(*PostgresWriter) (*migrator.Migrator, error) {
		return nil, assert.AnError
	}
	err := pgw.Migrate()
	a.ErrorIs(err, assert.AnError)
	a.Contains(err.Error(), "cannot initialize migration")
}

func TestPostgresWriter_Write(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	pgw := &PostgresWriter{ctx: ctx, sinkDb: conn}

	conn.ExpectBegin()
	conn.ExpectExec("TRUNCATE sheetsync.point, sheetsync.metric").WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	conn.ExpectExec("INSERT INTO sheetsync.metric").WithArgs("gdp", pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	conn.ExpectExec("INSERT INTO sheetsync.metric").WithArgs("cpi", pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	conn.ExpectCopyFrom(pgx.Identifier{"sheetsync", "point"}, []string{"slug", "position", "period", "value"}).WillReturnResult(2)
	conn.ExpectCommit()

	assert.NoError(t, pgw.Write(newTestDocument(t)))
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestPostgresWriter_WriteEmpty(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	pgw := &PostgresWriter{ctx: ctx, sinkDb: conn}

	conn.ExpectBegin()
	conn.ExpectExec("TRUNCATE").WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	conn.ExpectCommit()

	assert.NoError(t, pgw.Write(metrics.NewDocument()))
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestPostgresWriter_WriteRollback(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	pgw := &PostgresWriter{ctx: ctx, sinkDb: conn}

	conn.ExpectBegin()
	conn.ExpectExec("TRUNCATE").WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	conn.ExpectExec("INSERT INTO sheetsync.metric").WithArgs("gdp", pgxmock.AnyArg()).WillReturnError(errors.New("constraint violation"))
	conn.ExpectRollback()

	assert.Error(t, pgw.Write(newTestDocument(t)))
	assert.NoError(t, conn.ExpectationsWereMet())

	conn.ExpectBegin().WillReturnError(errors.New("connection lost"))
	assert.Error(t, pgw.Write(newTestDocument(t)))

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	pgw.ctx = cctx
	assert.ErrorIs(t, pgw.Write(newTestDocument(t)), context.Canceled)
}

func TestPostgresWriterIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}
	pg, tearDown, err := testutil.SetupPostgresContainer()
	defer tearDown()
	if err != nil {
		t.Skipf("postgres container is not available: %v", err)
	}
	connStr, err := pg.ConnectionString(testutil.TestContext, "sslmode=disable")
	require.NoError(t, err)

	pgw, err := NewPostgresWriter(testutil.TestContext, connStr)
	require.NoError(t, err)
	require.NoError(t, pgw.Write(newTestDocument(t)))
	require.NoError(t, pgw.Write(newTestDocument(t)), "second write replaces content")

	pgw, err = NewPostgresWriter(testutil.TestContext, connStr)
	require.NoError(t, err, "migrations are applied once")

	var migrationsCnt int
	require.NoError(t, pgw.sinkDb.QueryRow(testutil.TestContext,
		"SELECT count(*) FROM sheetsync.migration").Scan(&migrationsCnt))
	assert.Equal(t, 1, migrationsCnt)

	var metricsCnt, pointsCnt int
	require.NoError(t, pgw.sinkDb.QueryRow(testutil.TestContext,
		"SELECT (SELECT count(*) FROM sheetsync.metric), (SELECT count(*) FROM sheetsync.point)").Scan(&metricsCnt, &pointsCnt))
	assert.Equal(t, 2, metricsCnt)
	assert.Equal(t, 2, pointsCnt)

	var title string
	require.NoError(t, pgw.sinkDb.QueryRow(testutil.TestContext,
		"SELECT descriptor->>'title' FROM sheetsync.metric WHERE slug = $1", "gdp").Scan(&title))
	assert.Equal(t, "GDP", title)
}
