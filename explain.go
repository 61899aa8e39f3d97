package pqb

// ExplainFormat is the EXPLAIN output format.
type ExplainFormat int

const (
	FormatText ExplainFormat = iota
	FormatXML
	FormatJSON
	FormatYAML
)

func (f ExplainFormat) text() string {
	switch f {
	case FormatXML:
		return "XML"
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	default:
		return "TEXT"
	}
}

// ExplainSerialize is the SERIALIZE option argument.
type ExplainSerialize int

const (
	SerializeNone ExplainSerialize = iota
	SerializeText
	SerializeBinary
)

func (s ExplainSerialize) text() string {
	switch s {
	case SerializeText:
		return "TEXT"
	case SerializeBinary:
		return "BINARY"
	default:
		return "NONE"
	}
}

// Explain wraps a statement in EXPLAIN with its option list. Options render
// in a fixed order; an explicit false renders as a trailing ` 0`.
type Explain struct {
	statement   Explainable
	analyze     *bool
	verbose     *bool
	costs       *bool
	settings    *bool
	genericPlan *bool
	buffers     *bool
	serialize   *ExplainSerialize
	wal         *bool
	timing      *bool
	summary     *bool
	memory      *bool
	format      *ExplainFormat
}

func NewExplain() *Explain { return &Explain{} }

// Statement sets the statement to explain.
func (e *Explain) Statement(st Explainable) *Explain {
	e.statement = st
	return e
}

// Analyze turns ANALYZE on.
func (e *Explain) Analyze() *Explain {
	on := true
	e.analyze = &on
	return e
}

func (e *Explain) Verbose(on bool) *Explain     { e.verbose = &on; return e }
func (e *Explain) Costs(on bool) *Explain       { e.costs = &on; return e }
func (e *Explain) Settings(on bool) *Explain    { e.settings = &on; return e }
func (e *Explain) GenericPlan(on bool) *Explain { e.genericPlan = &on; return e }
func (e *Explain) Buffers(on bool) *Explain     { e.buffers = &on; return e }
func (e *Explain) WAL(on bool) *Explain         { e.wal = &on; return e }
func (e *Explain) Timing(on bool) *Explain      { e.timing = &on; return e }
func (e *Explain) Summary(on bool) *Explain     { e.summary = &on; return e }
func (e *Explain) Memory(on bool) *Explain      { e.memory = &on; return e }

func (e *Explain) Serialize(s ExplainSerialize) *Explain {
	e.serialize = &s
	return e
}

func (e *Explain) Format(f ExplainFormat) *Explain {
	e.format = &f
	return e
}

func writeExplain(w SQLWriter, e *Explain) {
	w.WriteSQL("EXPLAIN")

	hasOptions := e.analyze != nil || e.verbose != nil || e.costs != nil ||
		e.settings != nil || e.genericPlan != nil || e.buffers != nil ||
		e.serialize != nil || e.wal != nil || e.timing != nil ||
		e.summary != nil || e.memory != nil || e.format != nil

	if hasOptions {
		w.WriteSQL(" (")
		first := true
		// An omitted boolean means TRUE, so only false needs spelling out.
		writeFlag := func(name string, v *bool) {
			if v == nil {
				return
			}
			if first {
				first = false
			} else {
				w.WriteSQL(", ")
			}
			w.WriteSQL(name)
			if !*v {
				w.WriteSQL(" 0")
			}
		}
		writeFlag("ANALYZE", e.analyze)
		writeFlag("VERBOSE", e.verbose)
		writeFlag("COSTS", e.costs)
		writeFlag("SETTINGS", e.settings)
		writeFlag("GENERIC_PLAN", e.genericPlan)
		writeFlag("BUFFERS", e.buffers)
		if e.serialize != nil {
			if first {
				first = false
			} else {
				w.WriteSQL(", ")
			}
			w.WriteSQL("SERIALIZE ")
			w.WriteSQL(e.serialize.text())
		}
		writeFlag("WAL", e.wal)
		writeFlag("TIMING", e.timing)
		writeFlag("SUMMARY", e.summary)
		writeFlag("MEMORY", e.memory)
		if e.format != nil {
			if !first {
				w.WriteSQL(", ")
			}
			w.WriteSQL("FORMAT ")
			w.WriteSQL(e.format.text())
		}
		w.WriteSQL(")")
	}

	if e.statement != nil {
		w.WriteSQL(" ")
		switch st := e.statement.(type) {
		case *Select:
			writeSelect(w, st)
		case *Insert:
			writeInsert(w, st)
		case *Update:
			writeUpdate(w, st)
		case *Delete:
			writeDelete(w, st)
		}
	}
}

func (e *Explain) ToSQL() string {
	w := NewInlineWriter()
	writeExplain(w, e)
	return w.String()
}

func (e *Explain) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeExplain(w, e)
	return w.Parts()
}
