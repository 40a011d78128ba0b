package db

import (
	"context"
	"reflect"

	jsoniter "github.com/json-iterator/go"

	pgx "github.com/jackc/pgx/v5"
	pgconn "github.com/jackc/pgx/v5/pgconn"
	pgxpool "github.com/jackc/pgx/v5/pgxpool"
)

// PgxIface is common interface for every pgx class
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// PgxPoolIface is interface representing pgx pool
type PgxPoolIface interface {
	PgxIface
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Close()
	Config() *pgxpool.Config
	Ping(ctx context.Context) error
	Stat() *pgxpool.Stat
}

// MarshallParamToJSONB renders v as a JSON string suitable for a jsonb
// parameter. Empty values and values that cannot be marshalled become NULL.
func MarshallParamToJSONB(v any) any {
	if v == nil {
		return nil
	}
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Map, reflect.Slice:
		if val.Len() == 0 {
			return nil
		}
	case reflect.Pointer:
		if val.IsNil() {
			return nil
		}
	case reflect.Struct:
		if reflect.DeepEqual(v, reflect.Zero(val.Type()).Interface()) {
			return nil
		}
	}
	if b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v); err == nil {
		return string(b)
	}
	return nil
}
