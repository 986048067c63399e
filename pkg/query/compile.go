package query

import (
	"sort"
	"strconv"
	"strings"
)

// Query is a compiled statement: SQL text plus the parameter values bound
// to its "?" placeholders, in placeholder order.
type Query struct {
	SQL    string
	Params []any
}

// ToSQL compiles the accumulated state into a statement. All contract
// violations (no query type, missing table, missing payload, empty IN
// list) are reported here, before any SQL text is produced.
func (b *Builder) ToSQL() (Query, error) {
	if b.err != nil {
		return Query{}, b.err
	}
	if b.qtype == typeNone {
		return Query{}, ErrNoQueryType
	}
	if b.table == "" {
		return Query{}, ErrMissingTable
	}

	switch b.qtype {
	case typeSelect:
		return b.compileSelect()
	case typeInsert:
		return b.compileInsert()
	case typeUpdate:
		return b.compileUpdate()
	default:
		return b.compileDelete()
	}
}

func (b *Builder) compileSelect() (Query, error) {
	var sb strings.Builder
	var params []any

	fields := b.fields
	if len(fields) == 0 {
		fields = []string{"*"}
	}

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(fields, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)

	for _, j := range b.joins {
		sb.WriteByte(' ')
		sb.WriteString(j.Type)
		sb.WriteString(" JOIN ")
		sb.WriteString(j.Table)
		sb.WriteString(" ON ")
		sb.WriteString(j.First)
		sb.WriteByte(' ')
		sb.WriteString(j.Op)
		sb.WriteByte(' ')
		sb.WriteString(j.Second)
	}

	writeConditionClause(&sb, " WHERE ", b.conditions, &params)

	if len(b.groupBys) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(b.groupBys, ", "))
	}

	writeConditionClause(&sb, " HAVING ", b.havings, &params)

	if len(b.orders) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, o := range b.orders {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.Field)
			sb.WriteByte(' ')
			sb.WriteString(o.Direction)
		}
	}

	if b.limit >= 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(b.limit))
	}
	if b.offset >= 0 {
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.Itoa(b.offset))
	}

	return Query{SQL: sb.String(), Params: params}, nil
}

func (b *Builder) compileInsert() (Query, error) {
	if len(b.insertRows) == 0 {
		return Query{}, ErrMissingData
	}

	// The first row fixes the column list; Go maps are unordered, so keys
	// are sorted to keep the statement deterministic.
	columns := sortedKeys(b.insertRows[0])
	if len(columns) == 0 {
		return Query{}, ErrMissingData
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(b.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(") VALUES ")

	tuple := "(" + placeholders(len(columns)) + ")"
	params := make([]any, 0, len(b.insertRows)*len(columns))
	for i, row := range b.insertRows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tuple)
		for _, col := range columns {
			params = append(params, row[col])
		}
	}

	return Query{SQL: sb.String(), Params: params}, nil
}

func (b *Builder) compileUpdate() (Query, error) {
	if len(b.updateData) == 0 {
		return Query{}, ErrMissingData
	}

	columns := sortedKeys(b.updateData)

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")

	// SET parameters come before WHERE parameters, matching placeholder order.
	params := make([]any, 0, len(columns))
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col)
		sb.WriteString(" = ?")
		params = append(params, b.updateData[col])
	}

	writeConditionClause(&sb, " WHERE ", b.conditions, &params)

	return Query{SQL: sb.String(), Params: params}, nil
}

func (b *Builder) compileDelete() (Query, error) {
	var sb strings.Builder
	var params []any

	sb.WriteString("DELETE FROM ")
	sb.WriteString(b.table)
	writeConditionClause(&sb, " WHERE ", b.conditions, &params)

	return Query{SQL: sb.String(), Params: params}, nil
}

// writeConditionClause emits keyword plus the compiled tree, or nothing at
// all when the tree is empty.
func writeConditionClause(sb *strings.Builder, keyword string, conditions []Condition, params *[]any) {
	if len(conditions) == 0 {
		return
	}
	sb.WriteString(keyword)
	compileConditions(sb, conditions, params)
}

// compileConditions renders a condition tree. Each condition after the
// first is joined by its own connector to the previous one; nested groups
// recurse inside parentheses. Parameters are appended in exactly the order
// their placeholders are written.
func compileConditions(sb *strings.Builder, conditions []Condition, params *[]any) {
	for i, c := range conditions {
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(c.Connector)
			sb.WriteByte(' ')
		}

		if len(c.Nested) > 0 {
			sb.WriteByte('(')
			compileConditions(sb, c.Nested, params)
			sb.WriteByte(')')
			continue
		}

		sb.WriteString(c.Field)
		sb.WriteByte(' ')
		sb.WriteString(c.Operator)

		if c.Operator == "IN" || c.Operator == "NOT IN" {
			sb.WriteString(" (")
			sb.WriteString(placeholders(len(c.Values)))
			sb.WriteByte(')')
			*params = append(*params, c.Values...)
			continue
		}

		sb.WriteString(" ?")
		*params = append(*params, c.Value)
	}
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
