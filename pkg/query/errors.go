package query

import "errors"

// Builder misuse is reported through sentinel errors so callers can match
// with errors.Is. All of these surface synchronously from ToSQL (or are
// recorded by the offending chain call and surfaced by ToSQL), never from
// statement execution.
var (
	// ErrNoQueryType means ToSQL was called before Select, Insert, Update,
	// or Delete established the statement form.
	ErrNoQueryType = errors.New("no query type set")

	// ErrMissingTable means a statement was compiled without Table being called.
	ErrMissingTable = errors.New("missing table name")

	// ErrMissingData means an INSERT or UPDATE was compiled without a payload.
	ErrMissingData = errors.New("missing data payload")

	// ErrEmptyInClause means WhereIn or WhereNotIn was given an empty value
	// list. An empty IN list is ambiguous (matches nothing vs. SQL syntax
	// error), so it is rejected outright instead of emitting "IN ()".
	ErrEmptyInClause = errors.New("empty IN clause")

	// ErrNoDriver means an execution helper was called on a builder that
	// was constructed without a database driver.
	ErrNoDriver = errors.New("no driver configured")
)
