package pqb

type conflictAction int

const (
	conflictNoAction conflictAction = iota
	conflictDoNothing
	conflictDoUpdate
)

type conflictUpdate struct {
	col    Iden
	expr   Expr
	isExpr bool
}

// OnConflict is the upsert clause of an INSERT. Targets are either an
// expression list (plain columns included) or a single constraint name.
type OnConflict struct {
	targets     []Expr
	constraint  string
	targetConds []Expr
	action      conflictAction
	updates     []conflictUpdate
	actionConds []Expr
}

func NewOnConflict() *OnConflict { return &OnConflict{} }

// OnConflictColumns targets the named columns.
func OnConflictColumns(names ...string) *OnConflict {
	oc := &OnConflict{}
	for _, n := range names {
		oc.targets = append(oc.targets, Col(n))
	}
	return oc
}

// OnConflictExprs targets arbitrary index expressions.
func OnConflictExprs(exprs ...Expr) *OnConflict {
	return &OnConflict{targets: exprs}
}

// OnConflictConstraint targets a named constraint.
func OnConflictConstraint(name string) *OnConflict {
	return &OnConflict{constraint: name}
}

// DoNothing resolves conflicts by skipping the row.
func (oc *OnConflict) DoNothing() *OnConflict {
	oc.action = conflictDoNothing
	return oc
}

// UpdateColumn overwrites the column with the excluded row's value.
func (oc *OnConflict) UpdateColumn(name string) *OnConflict {
	return oc.UpdateColumns(name)
}

// UpdateColumns overwrites the columns with the excluded row's values.
func (oc *OnConflict) UpdateColumns(names ...string) *OnConflict {
	for _, n := range names {
		oc.addUpdate(conflictUpdate{col: NewIden(n)})
	}
	return oc
}

// Value sets the column to an explicit expression on conflict.
func (oc *OnConflict) Value(col string, v any) *OnConflict {
	oc.addUpdate(conflictUpdate{col: NewIden(col), expr: exprOf(v), isExpr: true})
	return oc
}

func (oc *OnConflict) addUpdate(u conflictUpdate) {
	if oc.action != conflictDoUpdate {
		oc.action = conflictDoUpdate
		oc.updates = nil
	}
	oc.updates = append(oc.updates, u)
}

// TargetAndWhere adds a condition on the conflict target (partial indexes).
func (oc *OnConflict) TargetAndWhere(e Expr) *OnConflict {
	oc.targetConds = append(oc.targetConds, e)
	return oc
}

// ActionAndWhere adds a condition on the DO UPDATE action.
func (oc *OnConflict) ActionAndWhere(e Expr) *OnConflict {
	oc.actionConds = append(oc.actionConds, e)
	return oc
}

func writeOnConflict(w SQLWriter, oc *OnConflict) {
	w.WriteSQL(" ON CONFLICT ")
	if oc.constraint != "" {
		w.WriteSQL(`ON CONSTRAINT "`)
		w.WriteSQL(oc.constraint)
		w.WriteSQL(`"`)
	} else {
		w.WriteSQL("(")
		for i, e := range oc.targets {
			if i > 0 {
				w.WriteSQL(", ")
			}
			writeExpr(w, e)
		}
		w.WriteSQL(")")
	}
	if len(oc.targetConds) > 0 {
		w.WriteSQL(" WHERE ")
		writeExpr(w, exprAnd(oc.targetConds))
	}
	switch oc.action {
	case conflictDoNothing:
		w.WriteSQL(" DO NOTHING")
	case conflictDoUpdate:
		w.WriteSQL(" DO UPDATE SET ")
		for i, u := range oc.updates {
			if i > 0 {
				w.WriteSQL(", ")
			}
			writeIden(w, u.col)
			if u.isExpr {
				w.WriteSQL(" = ")
				writeExpr(w, u.expr)
			} else {
				w.WriteSQL(` = "excluded".`)
				writeIden(w, u.col)
			}
		}
	}
	if len(oc.actionConds) > 0 {
		w.WriteSQL(" WHERE ")
		writeExpr(w, exprAnd(oc.actionConds))
	}
}
