package pqb

import (
	"strconv"
	"strings"
)

// SQLWriter is the sink every renderer writes into. The two implementations
// emit identical SQL text everywhere except at value positions.
type SQLWriter interface {
	WriteSQL(s string)
	WriteValue(v Value)
}

// InlineWriter renders values as SQL literals in place.
type InlineWriter struct {
	sb strings.Builder
}

func NewInlineWriter() *InlineWriter { return &InlineWriter{} }

func (w *InlineWriter) WriteSQL(s string) { w.sb.WriteString(s) }

func (w *InlineWriter) WriteValue(v Value) { writeValueLiteral(&w.sb, v) }

func (w *InlineWriter) String() string { return w.sb.String() }

// ValuesWriter renders values as $1, $2, ... placeholders in emission order
// and collects them for binding.
type ValuesWriter struct {
	sb     strings.Builder
	values []Value
}

func NewValuesWriter() *ValuesWriter { return &ValuesWriter{} }

func (w *ValuesWriter) WriteSQL(s string) { w.sb.WriteString(s) }

func (w *ValuesWriter) WriteValue(v Value) {
	w.values = append(w.values, v)
	w.sb.WriteString("$")
	w.sb.WriteString(strconv.Itoa(len(w.values)))
}

// Parts returns the placeholder SQL and the values in placeholder order.
func (w *ValuesWriter) Parts() (string, []Value) {
	return w.sb.String(), w.values
}

// writeLiteral renders a value as inline literal text regardless of the
// writer mode. CTE VALUES bodies use it so they never become placeholders.
func writeLiteral(w SQLWriter, v Value) {
	var sb strings.Builder
	writeValueLiteral(&sb, v)
	w.WriteSQL(sb.String())
}
