package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver records the last statement it was handed and replays canned
// results, standing in for a real database adapter.
type fakeDriver struct {
	lastSQL    string
	lastParams []any
	lastOpts   Options
	result     *Result
	err        error
}

func (d *fakeDriver) Query(_ context.Context, sql string, params []any, opts Options) (*Result, error) {
	d.lastSQL = sql
	d.lastParams = params
	d.lastOpts = opts
	if d.err != nil {
		return nil, d.err
	}
	return d.result, nil
}

func TestExecuteDelegatesToDriver(t *testing.T) {
	driver := &fakeDriver{result: &Result{RowsAffected: 1}}

	res, err := NewWithDriver(driver).Table("users").
		Update(map[string]any{"active": true}).
		Where("id", 3).
		Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.RowsAffected)
	assert.Equal(t, "UPDATE users SET active = ? WHERE id = ?", driver.lastSQL)
	assert.Equal(t, []any{true, 3}, driver.lastParams)
	assert.False(t, driver.lastOpts.Single)
}

func TestExecuteWithoutDriver(t *testing.T) {
	_, err := New().Table("users").Select().Execute(context.Background())
	assert.ErrorIs(t, err, ErrNoDriver)
}

func TestExecutePropagatesCompileErrors(t *testing.T) {
	driver := &fakeDriver{}
	_, err := NewWithDriver(driver).Table("users").Execute(context.Background())
	assert.ErrorIs(t, err, ErrNoQueryType)
	assert.Empty(t, driver.lastSQL, "driver must not be called on compile failure")
}

func TestExecutePropagatesDriverErrors(t *testing.T) {
	driverErr := errors.New("connection refused")
	driver := &fakeDriver{err: driverErr}

	_, err := NewWithDriver(driver).Table("users").Select().Execute(context.Background())
	assert.ErrorIs(t, err, driverErr)
}

func TestFirst(t *testing.T) {
	driver := &fakeDriver{result: &Result{Rows: []Row{{"id": 1, "name": "Ada"}}}}

	row, err := NewWithDriver(driver).Table("users").Select().
		Where("id", 1).
		First(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Row{"id": 1, "name": "Ada"}, row)
	assert.Equal(t, "SELECT * FROM users WHERE id = ? LIMIT 1", driver.lastSQL)
	assert.True(t, driver.lastOpts.Single)
}

func TestFirstRestoresLimit(t *testing.T) {
	driver := &fakeDriver{result: &Result{Rows: []Row{{"id": 1}}}}

	b := NewWithDriver(driver).Table("users").Select().Limit(50)
	_, err := b.First(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users LIMIT 1", driver.lastSQL)

	// The builder keeps its own limit after First.
	q, err := b.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users LIMIT 50", q.SQL)

	// A builder with no limit set stays unlimited.
	b = NewWithDriver(driver).Table("users").Select()
	_, err = b.First(context.Background())
	require.NoError(t, err)

	q, err = b.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users", q.SQL)
}

func TestFirstEmptyResult(t *testing.T) {
	driver := &fakeDriver{result: &Result{}}

	row, err := NewWithDriver(driver).Table("users").Select().First(context.Background())
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestCount(t *testing.T) {
	driver := &fakeDriver{result: &Result{Rows: []Row{{"count": int64(12)}}}}

	b := NewWithDriver(driver).Table("users").Select("id", "name").Where("active", true)
	n, err := b.Count(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), n)
	assert.Equal(t, "SELECT COUNT(*) AS count FROM users WHERE active = ?", driver.lastSQL)

	// The field list is restored after Count.
	q, err := b.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM users WHERE active = ?", q.SQL)
}

func TestExists(t *testing.T) {
	driver := &fakeDriver{result: &Result{Rows: []Row{{"count": int64(0)}}}}
	ok, err := NewWithDriver(driver).Table("users").Select().Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	driver.result = &Result{Rows: []Row{{"count": int64(3)}}}
	ok, err = NewWithDriver(driver).Table("users").Select().Exists(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
