package pqb

import "strconv"

type selectExpr struct {
	expr     Expr
	alias    Iden
	hasAlias bool
}

type joinExpr struct {
	join  JoinType
	table TableRef
	on    Expr
}

type lockMode int

const (
	lockForUpdate lockMode = iota
	lockForNoKeyUpdate
	lockForShare
	lockForKeyShare
)

type lockWait int

const (
	lockWaitDefault lockWait = iota
	lockNoWait
	lockSkipLocked
)

// RowLevelLock is the FOR UPDATE / FOR SHARE family of locking clauses.
type RowLevelLock struct {
	mode   lockMode
	tables []TableName
	wait   lockWait
}

func ForUpdate() RowLevelLock      { return RowLevelLock{mode: lockForUpdate} }
func ForNoKeyUpdate() RowLevelLock { return RowLevelLock{mode: lockForNoKeyUpdate} }
func ForShare() RowLevelLock       { return RowLevelLock{mode: lockForShare} }
func ForKeyShare() RowLevelLock    { return RowLevelLock{mode: lockForKeyShare} }

// Of restricts the lock to the given tables.
func (l RowLevelLock) Of(tables ...TableName) RowLevelLock {
	l.tables = append(l.tables, tables...)
	return l
}

func (l RowLevelLock) NoWait() RowLevelLock {
	l.wait = lockNoWait
	return l
}

func (l RowLevelLock) SkipLocked() RowLevelLock {
	l.wait = lockSkipLocked
	return l
}

func writeLock(w SQLWriter, l RowLevelLock) {
	switch l.mode {
	case lockForUpdate:
		w.WriteSQL(" FOR UPDATE")
	case lockForNoKeyUpdate:
		w.WriteSQL(" FOR NO KEY UPDATE")
	case lockForShare:
		w.WriteSQL(" FOR SHARE")
	case lockForKeyShare:
		w.WriteSQL(" FOR KEY SHARE")
	}
	if len(l.tables) > 0 {
		w.WriteSQL(" OF ")
		for i, t := range l.tables {
			if i > 0 {
				w.WriteSQL(", ")
			}
			writeTableName(w, t)
		}
	}
	switch l.wait {
	case lockNoWait:
		w.WriteSQL(" NOWAIT")
	case lockSkipLocked:
		w.WriteSQL(" SKIP LOCKED")
	}
}

// TableSample is the TABLESAMPLE clause.
type TableSample struct {
	system     bool
	percentage float64
	seed       *float64
}

func SystemSample(percentage float64) TableSample {
	return TableSample{system: true, percentage: percentage}
}

func BernoulliSample(percentage float64) TableSample {
	return TableSample{percentage: percentage}
}

// Repeatable fixes the sampling seed.
func (t TableSample) Repeatable(seed float64) TableSample {
	t.seed = &seed
	return t
}

func writeTableSample(w SQLWriter, t TableSample) {
	if t.system {
		w.WriteSQL(" TABLESAMPLE SYSTEM")
	} else {
		w.WriteSQL(" TABLESAMPLE BERNOULLI")
	}
	w.WriteSQL(" (")
	w.WriteSQL(strconv.FormatFloat(t.percentage, 'f', -1, 64))
	w.WriteSQL(")")
	if t.seed != nil {
		w.WriteSQL(" REPEATABLE (")
		w.WriteSQL(strconv.FormatFloat(*t.seed, 'f', -1, 64))
		w.WriteSQL(")")
	}
}

// Select builds a SELECT statement.
type Select struct {
	selects []selectExpr
	from    []TableRef
	sample  *TableSample
	joins   []joinExpr
	conds   []Expr
	groups  []Expr
	having  []Expr
	orders  []Order
	limit   *uint64
	offset  *uint64
	lock    *RowLevelLock
	with    *With
}

func NewSelect() *Select { return &Select{} }

// Expr adds one projection expression.
func (s *Select) Expr(e Expr) *Select {
	s.selects = append(s.selects, selectExpr{expr: e})
	return s
}

// ExprAs adds a projection expression with an alias.
func (s *Select) ExprAs(e Expr, alias string) *Select {
	s.selects = append(s.selects, selectExpr{expr: e, alias: NewIden(alias), hasAlias: true})
	return s
}

// Column projects a column by name parts.
func (s *Select) Column(parts ...string) *Select {
	return s.Expr(Col(parts...))
}

// Columns projects several single-part columns.
func (s *Select) Columns(names ...string) *Select {
	for _, n := range names {
		s.Expr(Col(n))
	}
	return s
}

// From adds a table to the FROM list.
func (s *Select) From(parts ...string) *Select {
	s.from = append(s.from, TableRefOf(Table(parts...)))
	return s
}

// FromAs adds an aliased table.
func (s *Select) FromAs(alias string, parts ...string) *Select {
	s.from = append(s.from, TableRefOf(Table(parts...)).As(alias))
	return s
}

// FromSubquery adds a parenthesized subquery with its alias.
func (s *Select) FromSubquery(sub *Select, alias string) *Select {
	s.from = append(s.from, SubqueryRef(sub, alias))
	return s
}

// FromRef adds a prebuilt table reference.
func (s *Select) FromRef(ref TableRef) *Select {
	s.from = append(s.from, ref)
	return s
}

// Sample applies TABLESAMPLE to the statement.
func (s *Select) Sample(t TableSample) *Select {
	s.sample = &t
	return s
}

func (s *Select) LeftJoin(table TableName, on Expr) *Select {
	s.joins = append(s.joins, joinExpr{join: LeftJoin, table: TableRefOf(table), on: on})
	return s
}

func (s *Select) InnerJoin(table TableName, on Expr) *Select {
	s.joins = append(s.joins, joinExpr{join: InnerJoin, table: TableRefOf(table), on: on})
	return s
}

// JoinAs joins an aliased table.
func (s *Select) JoinAs(join JoinType, table TableRef, on Expr) *Select {
	s.joins = append(s.joins, joinExpr{join: join, table: table, on: on})
	return s
}

// AndWhere adds a condition; all conditions fold under AND.
func (s *Select) AndWhere(e Expr) *Select {
	s.conds = append(s.conds, e)
	return s
}

func (s *Select) GroupBy(exprs ...Expr) *Select {
	s.groups = append(s.groups, exprs...)
	return s
}

// GroupByColumns groups by the named columns.
func (s *Select) GroupByColumns(names ...string) *Select {
	for _, n := range names {
		s.groups = append(s.groups, Col(n))
	}
	return s
}

// AndHaving adds a HAVING condition; conditions fold under AND.
func (s *Select) AndHaving(e Expr) *Select {
	s.having = append(s.having, e)
	return s
}

func (s *Select) OrderBy(orders ...Order) *Select {
	s.orders = append(s.orders, orders...)
	return s
}

func (s *Select) Limit(n uint64) *Select {
	s.limit = &n
	return s
}

func (s *Select) Offset(n uint64) *Select {
	s.offset = &n
	return s
}

// Lock appends a row-level locking clause.
func (s *Select) Lock(l RowLevelLock) *Select {
	s.lock = &l
	return s
}

// With prepends a WITH clause.
func (s *Select) With(w *With) *Select {
	s.with = w
	return s
}

// columnsLen is the projection count, checked by INSERT ... SELECT.
func (s *Select) columnsLen() int { return len(s.selects) }

func writeSelect(w SQLWriter, s *Select) {
	if s.with != nil {
		writeWith(w, s.with)
		w.WriteSQL(" ")
	}
	w.WriteSQL("SELECT ")
	for i, se := range s.selects {
		if i > 0 {
			w.WriteSQL(", ")
		}
		writeExpr(w, se.expr)
		if se.hasAlias {
			w.WriteSQL(" AS ")
			writeIden(w, se.alias)
		}
	}
	for i, f := range s.from {
		if i == 0 {
			w.WriteSQL(" FROM ")
		} else {
			w.WriteSQL(", ")
		}
		writeTableRef(w, f)
	}
	if s.sample != nil {
		writeTableSample(w, *s.sample)
	}
	for _, j := range s.joins {
		w.WriteSQL(j.join.keyword())
		writeTableRef(w, j.table)
		w.WriteSQL(" ON ")
		writeExpr(w, j.on)
	}
	if len(s.conds) > 0 {
		w.WriteSQL(" WHERE ")
		writeExpr(w, exprAnd(s.conds))
	}
	if len(s.groups) > 0 {
		w.WriteSQL(" GROUP BY ")
		for i, g := range s.groups {
			if i > 0 {
				w.WriteSQL(", ")
			}
			writeExpr(w, g)
		}
	}
	if len(s.having) > 0 {
		w.WriteSQL(" HAVING ")
		writeExpr(w, exprAnd(s.having))
	}
	if len(s.orders) > 0 {
		w.WriteSQL(" ORDER BY ")
		for i, o := range s.orders {
			if i > 0 {
				w.WriteSQL(", ")
			}
			writeOrder(w, o)
		}
	}
	if s.limit != nil {
		w.WriteSQL(" LIMIT ")
		w.WriteSQL(strconv.FormatUint(*s.limit, 10))
	}
	if s.offset != nil {
		w.WriteSQL(" OFFSET ")
		w.WriteSQL(strconv.FormatUint(*s.offset, 10))
	}
	if s.lock != nil {
		writeLock(w, *s.lock)
	}
}

func (s *Select) ToSQL() string {
	w := NewInlineWriter()
	writeSelect(w, s)
	return w.String()
}

func (s *Select) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeSelect(w, s)
	return w.Parts()
}

// Fingerprint hashes the rendered statement for cache keying.
func (s *Select) Fingerprint() uint64 { return fnvString(s.ToSQL()) }

func (s *Select) explainable() {}
