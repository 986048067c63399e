package query

// Connector values join a condition to the one before it at the same
// nesting level. The first condition's connector is ignored.
const (
	ConnectorAnd = "AND"
	ConnectorOr  = "OR"
)

// Condition is one entry in a WHERE or HAVING tree: either a leaf
// comparison or, when Nested is non-empty, a parenthesized group.
type Condition struct {
	Field     string
	Operator  string
	Value     any
	Values    []any // IN / NOT IN value list
	Connector string
	Nested    []Condition
}

// ConditionBuilder is the surface handed to grouping closures. It mirrors
// the builder's own condition methods so arbitrarily deep boolean groups
// can be assembled without touching the parent builder.
type ConditionBuilder interface {
	Where(field string, args ...any) ConditionBuilder
	OrWhere(field string, args ...any) ConditionBuilder
	WhereIn(field string, values []any) ConditionBuilder
	WhereNotIn(field string, values []any) ConditionBuilder
	Group(fn func(ConditionBuilder)) ConditionBuilder
	OrGroup(fn func(ConditionBuilder)) ConditionBuilder
}

// conditionGroup collects conditions inside a grouping closure. Errors
// (an empty IN list, for now) are reported back to the owning builder.
type conditionGroup struct {
	conditions []Condition
	reportErr  func(error)
}

func (g *conditionGroup) Where(field string, args ...any) ConditionBuilder {
	op, value := splitOperator(args)
	g.conditions = append(g.conditions, Condition{
		Field: field, Operator: op, Value: value, Connector: ConnectorAnd,
	})
	return g
}

func (g *conditionGroup) OrWhere(field string, args ...any) ConditionBuilder {
	op, value := splitOperator(args)
	g.conditions = append(g.conditions, Condition{
		Field: field, Operator: op, Value: value, Connector: ConnectorOr,
	})
	return g
}

func (g *conditionGroup) WhereIn(field string, values []any) ConditionBuilder {
	g.addIn(field, "IN", ConnectorAnd, values)
	return g
}

func (g *conditionGroup) WhereNotIn(field string, values []any) ConditionBuilder {
	g.addIn(field, "NOT IN", ConnectorAnd, values)
	return g
}

func (g *conditionGroup) Group(fn func(ConditionBuilder)) ConditionBuilder {
	g.addGroup(ConnectorAnd, fn)
	return g
}

func (g *conditionGroup) OrGroup(fn func(ConditionBuilder)) ConditionBuilder {
	g.addGroup(ConnectorOr, fn)
	return g
}

func (g *conditionGroup) addIn(field, operator, connector string, values []any) {
	if len(values) == 0 {
		g.reportErr(ErrEmptyInClause)
		return
	}
	g.conditions = append(g.conditions, Condition{
		Field: field, Operator: operator, Values: values, Connector: connector,
	})
}

func (g *conditionGroup) addGroup(connector string, fn func(ConditionBuilder)) {
	inner := &conditionGroup{reportErr: g.reportErr}
	fn(inner)
	if len(inner.conditions) == 0 {
		return
	}
	g.conditions = append(g.conditions, Condition{
		Connector: connector, Nested: inner.conditions,
	})
}

// splitOperator interprets the variadic tail of Where-style calls: one
// argument means "= value", two mean an explicit operator and value.
func splitOperator(args []any) (string, any) {
	switch len(args) {
	case 1:
		return "=", args[0]
	case 2:
		if op, ok := args[0].(string); ok {
			return op, args[1]
		}
	}
	// Fall back to equality against the last argument; a malformed call
	// still produces a parameterized comparison rather than a panic.
	if len(args) == 0 {
		return "=", nil
	}
	return "=", args[len(args)-1]
}
