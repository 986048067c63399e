package query

import (
	"context"
	"fmt"
)

// Row is one record returned by a driver.
type Row map[string]any

// Options carries per-call hints to the driver.
type Options struct {
	// Single asks the driver to fetch at most one row.
	Single bool
}

// Result is what a driver reports back for a statement.
type Result struct {
	Rows         []Row
	RowsAffected int64
	LastInsertID int64
}

// Driver is the single external capability the builder depends on: a
// parameterized-query call supplied by the surrounding application (a
// Postgres, MySQL, or SQLite adapter). The builder never inspects or
// rewrites driver errors; they propagate as-is.
type Driver interface {
	Query(ctx context.Context, sql string, params []any, opts Options) (*Result, error)
}

// Execute compiles the statement and runs it through the driver.
func (b *Builder) Execute(ctx context.Context) (*Result, error) {
	q, err := b.compileForDriver()
	if err != nil {
		return nil, err
	}
	return b.driver.Query(ctx, q.SQL, q.Params, Options{})
}

// First limits the statement to one row and returns it, or nil when the
// result set is empty. The builder's limit is restored afterwards.
func (b *Builder) First(ctx context.Context) (Row, error) {
	saved := b.limit
	b.Limit(1)
	defer func() { b.limit = saved }()

	q, err := b.compileForDriver()
	if err != nil {
		return nil, err
	}

	res, err := b.driver.Query(ctx, q.SQL, q.Params, Options{Single: true})
	if err != nil {
		return nil, err
	}
	if res == nil || len(res.Rows) == 0 {
		return nil, nil
	}
	return res.Rows[0], nil
}

// Count compiles the accumulated SELECT as COUNT(*) and returns the value.
// The builder's field list is restored afterwards.
func (b *Builder) Count(ctx context.Context) (int64, error) {
	saved := b.fields
	b.fields = []string{"COUNT(*) AS count"}
	defer func() { b.fields = saved }()

	if b.qtype == typeNone {
		b.qtype = typeSelect
	}

	q, err := b.compileForDriver()
	if err != nil {
		return 0, err
	}

	res, err := b.driver.Query(ctx, q.SQL, q.Params, Options{Single: true})
	if err != nil {
		return 0, err
	}
	if res == nil || len(res.Rows) == 0 {
		return 0, nil
	}
	return toInt64(res.Rows[0]["count"])
}

// Exists reports whether the accumulated SELECT matches at least one row.
func (b *Builder) Exists(ctx context.Context) (bool, error) {
	n, err := b.Count(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *Builder) compileForDriver() (Query, error) {
	if b.driver == nil {
		return Query{}, ErrNoDriver
	}
	return b.ToSQL()
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("driver returned non-numeric count of type %T", v)
	}
}
