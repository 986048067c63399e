// Package query assembles parameterized SQL statements from a fluent
// builder. Values are never inlined into the statement text: every bound
// value becomes a positional "?" placeholder paired with an entry in the
// parameter list, in the order the placeholders appear in the SQL.
//
// A Builder accumulates state across chained calls and must not be shared
// between goroutines or reused across mutually exclusive query types; build
// each statement with its own instance.
package query

import "strings"

type queryType int

const (
	typeNone queryType = iota
	typeSelect
	typeInsert
	typeUpdate
	typeDelete
)

// Join is one JOIN clause of a SELECT.
type Join struct {
	Type   string // INNER, LEFT, or RIGHT
	Table  string
	First  string
	Op     string
	Second string
}

// OrderBy is one ORDER BY entry.
type OrderBy struct {
	Field     string
	Direction string
}

// Builder accumulates the pieces of a single SQL statement.
type Builder struct {
	driver Driver

	table      string
	qtype      queryType
	fields     []string
	conditions []Condition
	havings    []Condition
	joins      []Join
	groupBys   []string
	orders     []OrderBy
	limit      int
	offset     int
	insertRows []map[string]any
	updateData map[string]any

	err error
}

// New returns an empty Builder with no execution driver. ToSQL works;
// the execution helpers return ErrNoDriver.
func New() *Builder {
	return &Builder{limit: -1, offset: -1}
}

// NewWithDriver returns a Builder whose execution helpers delegate to the
// given driver.
func NewWithDriver(driver Driver) *Builder {
	b := New()
	b.driver = driver
	return b
}

// Table sets the target table for the statement.
func (b *Builder) Table(name string) *Builder {
	b.table = name
	return b
}

// Select marks the statement as a SELECT. With no arguments all columns
// are selected.
func (b *Builder) Select(fields ...string) *Builder {
	b.qtype = typeSelect
	if len(fields) > 0 {
		b.fields = append(b.fields, fields...)
	}
	return b
}

// Insert marks the statement as a single-row INSERT.
func (b *Builder) Insert(data map[string]any) *Builder {
	b.qtype = typeInsert
	if data != nil {
		b.insertRows = []map[string]any{data}
	}
	return b
}

// InsertAll marks the statement as a multi-row INSERT. All rows share the
// column list taken from the first row.
func (b *Builder) InsertAll(rows []map[string]any) *Builder {
	b.qtype = typeInsert
	b.insertRows = rows
	return b
}

// Update marks the statement as an UPDATE with the given SET payload.
func (b *Builder) Update(data map[string]any) *Builder {
	b.qtype = typeUpdate
	b.updateData = data
	return b
}

// Delete marks the statement as a DELETE.
func (b *Builder) Delete() *Builder {
	b.qtype = typeDelete
	return b
}

// Where appends an AND-connected leaf condition. One trailing argument
// compares with "=", two are an explicit operator and value:
//
//	b.Where("active", true)
//	b.Where("age", ">=", 18)
func (b *Builder) Where(field string, args ...any) *Builder {
	op, value := splitOperator(args)
	b.conditions = append(b.conditions, Condition{
		Field: field, Operator: op, Value: value, Connector: ConnectorAnd,
	})
	return b
}

// OrWhere appends an OR-connected leaf condition.
func (b *Builder) OrWhere(field string, args ...any) *Builder {
	op, value := splitOperator(args)
	b.conditions = append(b.conditions, Condition{
		Field: field, Operator: op, Value: value, Connector: ConnectorOr,
	})
	return b
}

// WhereIn appends an IN condition. An empty value list is rejected with
// ErrEmptyInClause, surfaced by ToSQL.
func (b *Builder) WhereIn(field string, values []any) *Builder {
	b.addIn(field, "IN", values)
	return b
}

// WhereNotIn appends a NOT IN condition with the same empty-list rule.
func (b *Builder) WhereNotIn(field string, values []any) *Builder {
	b.addIn(field, "NOT IN", values)
	return b
}

// WhereGroup appends a parenthesized, AND-connected condition group built
// by fn. Groups nest to arbitrary depth:
//
//	b.WhereGroup(func(g ConditionBuilder) {
//		g.Where("a", 1).OrWhere("b", 2)
//	}).Where("c", 3)
//
// compiles to "(a = ? OR b = ?) AND c = ?".
func (b *Builder) WhereGroup(fn func(ConditionBuilder)) *Builder {
	b.addConditionGroup(&b.conditions, ConnectorAnd, fn)
	return b
}

// OrWhereGroup appends an OR-connected condition group.
func (b *Builder) OrWhereGroup(fn func(ConditionBuilder)) *Builder {
	b.addConditionGroup(&b.conditions, ConnectorOr, fn)
	return b
}

// Join appends an INNER JOIN clause.
func (b *Builder) Join(table, first, op, second string) *Builder {
	return b.addJoin("INNER", table, first, op, second)
}

// LeftJoin appends a LEFT JOIN clause.
func (b *Builder) LeftJoin(table, first, op, second string) *Builder {
	return b.addJoin("LEFT", table, first, op, second)
}

// RightJoin appends a RIGHT JOIN clause.
func (b *Builder) RightJoin(table, first, op, second string) *Builder {
	return b.addJoin("RIGHT", table, first, op, second)
}

// GroupBy appends GROUP BY fields.
func (b *Builder) GroupBy(fields ...string) *Builder {
	b.groupBys = append(b.groupBys, fields...)
	return b
}

// Having appends an AND-connected HAVING condition.
func (b *Builder) Having(field string, args ...any) *Builder {
	op, value := splitOperator(args)
	b.havings = append(b.havings, Condition{
		Field: field, Operator: op, Value: value, Connector: ConnectorAnd,
	})
	return b
}

// OrHaving appends an OR-connected HAVING condition.
func (b *Builder) OrHaving(field string, args ...any) *Builder {
	op, value := splitOperator(args)
	b.havings = append(b.havings, Condition{
		Field: field, Operator: op, Value: value, Connector: ConnectorOr,
	})
	return b
}

// HavingGroup appends a parenthesized, AND-connected HAVING group.
func (b *Builder) HavingGroup(fn func(ConditionBuilder)) *Builder {
	b.addConditionGroup(&b.havings, ConnectorAnd, fn)
	return b
}

// OrderBy appends an ORDER BY entry. Direction defaults to ASC and is
// normalized to upper case; anything other than DESC becomes ASC.
func (b *Builder) OrderBy(field string, direction ...string) *Builder {
	dir := "ASC"
	if len(direction) > 0 && strings.EqualFold(direction[0], "DESC") {
		dir = "DESC"
	}
	b.orders = append(b.orders, OrderBy{Field: field, Direction: dir})
	return b
}

// Limit sets the LIMIT clause. Negative values unset it.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Offset sets the OFFSET clause. Negative values unset it.
func (b *Builder) Offset(n int) *Builder {
	b.offset = n
	return b
}

func (b *Builder) addIn(field, operator string, values []any) {
	if len(values) == 0 {
		b.recordErr(ErrEmptyInClause)
		return
	}
	b.conditions = append(b.conditions, Condition{
		Field: field, Operator: operator, Values: values, Connector: ConnectorAnd,
	})
}

func (b *Builder) addJoin(joinType, table, first, op, second string) *Builder {
	b.joins = append(b.joins, Join{
		Type: joinType, Table: table, First: first, Op: op, Second: second,
	})
	return b
}

func (b *Builder) addConditionGroup(target *[]Condition, connector string, fn func(ConditionBuilder)) {
	group := &conditionGroup{reportErr: b.recordErr}
	fn(group)
	if len(group.conditions) == 0 {
		return
	}
	*target = append(*target, Condition{
		Connector: connector, Nested: group.conditions,
	})
}

// recordErr keeps the first misuse error; ToSQL reports it before any SQL
// is produced.
func (b *Builder) recordErr(err error) {
	if b.err == nil {
		b.err = err
	}
}
