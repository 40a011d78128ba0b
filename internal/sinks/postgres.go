package sinks

import (
	"context"
	_ "embed"
	"fmt"

	migrator "github.com/cybertec-postgresql/pgx-migrator"
	"github.com/jackc/pgx/v5"

	"github.com/sheetsync/sheetsync/internal/db"
	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/sheetsync/sheetsync/internal/metrics"
)

//go:embed sql/00001_tables.sql
var sqlSinkTables string

const sinkSchema = "sheetsync"

var (
	pointTable   = pgx.Identifier{"sheetsync", "point"}
	pointColumns = []string{"slug", "position", "period", "value"}
)

// PostgresWriter is a sink that stores the metrics document in a Postgres database.
// Descriptors land in sheetsync.metric as jsonb, observations in sheetsync.point.
// Every write replaces the whole content in a single transaction.
type PostgresWriter struct {
	ctx    context.Context
	sinkDb db.PgxPoolIface
}

func NewPostgresWriter(ctx context.Context, connstr string) (pgw *PostgresWriter, err error) {
	var conn db.PgxPoolIface
	if conn, err = db.New(ctx, connstr); err != nil {
		return
	}
	return NewWriterFromPostgresConn(ctx, conn)
}

func NewWriterFromPostgresConn(ctx context.Context, conn db.PgxPoolIface) (pgw *PostgresWriter, err error) {
	l := log.GetLogger(ctx).WithField("sink", "postgres").WithField("db", conn.Config().ConnConfig.Database)
	ctx = log.WithLogger(ctx, l)
	pgw = &PostgresWriter{
		ctx:    ctx,
		sinkDb: conn,
	}
	l.Info("initialising metrics database...")
	if err = db.Init(ctx, conn, pgw.init); err != nil {
		return nil, err
	}
	l.Debug("metrics sink is activated")
	return
}

// init creates the sink schema if needed and applies pending migrations,
// the migrator keeps its bookkeeping table inside the schema
func (pgw *PostgresWriter) init(ctx context.Context, conn db.PgxIface) error {
	exists, err := db.DoesSchemaExist(ctx, conn, sinkSchema)
	if err != nil {
		return err
	}
	if !exists {
		if _, err = conn.Exec(ctx, "CREATE SCHEMA "+sinkSchema); err != nil {
			return err
		}
	}
	return pgw.Migrate()
}

var initMigrator = func(pgw *PostgresWriter) (*migrator.Migrator, error) {
	return migrator.New(
		migrator.TableName(sinkSchema+".migration"),
		migrator.SetNotice(func(s string) {
			log.GetLogger(pgw.ctx).Info(s)
		}),
		migrations(),
	)
}

// Migrate upgrades database with all migrations
func (pgw *PostgresWriter) Migrate() error {
	m, err := initMigrator(pgw)
	if err != nil {
		return fmt.Errorf("cannot initialize migration: %w", err)
	}
	return m.Migrate(pgw.ctx, pgw.sinkDb)
}

// migrations holds function returning all upgrade migrations needed
var migrations func() migrator.Option = func() migrator.Option {
	return migrator.Migrations(
		&migrator.Migration{
			Name: "00001 Create metric and point tables",
			Func: func(ctx context.Context, tx pgx.Tx) error {
				_, err := tx.Exec(ctx, sqlSinkTables)
				return err
			},
		},
	)
}

func (pgw *PostgresWriter) Write(doc *metrics.Document) (err error) {
	ctx := pgw.ctx
	if ctx.Err() != nil {
		return ctx.Err()
	}
	tx, err := pgw.sinkDb.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	if _, err = tx.Exec(ctx, "TRUNCATE sheetsync.point, sheetsync.metric"); err != nil {
		return err
	}
	rows := make([][]any, 0, doc.Points())
	for slug, d := range doc.All() {
		if _, err = tx.Exec(ctx, `INSERT INTO sheetsync.metric (slug, descriptor) VALUES ($1, $2)`,
			slug, db.MarshallParamToJSONB(d)); err != nil {
			return err
		}
		for i, p := range d.Data {
			rows = append(rows, []any{slug, i, p.Period, p.Value})
		}
	}
	if len(rows) > 0 {
		if _, err = tx.CopyFrom(ctx, pointTable, pointColumns, pgx.CopyFromRows(rows)); err != nil {
			return err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return err
	}
	log.GetLogger(ctx).WithField("metrics", doc.Len()).WithField("points", len(rows)).Debug("document stored")
	return nil
}
