package pqb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ValueKind tags the payload type of a Value. A null Value still carries its
// kind, so typed NULLs survive the trip into the parameter list.
type ValueKind int

const (
	ValueBool ValueKind = iota
	ValueTinyInt
	ValueSmallInt
	ValueInt
	ValueBigInt
	ValueTinyUnsigned
	ValueSmallUnsigned
	ValueUnsigned
	ValueBigUnsigned
	ValueFloat
	ValueDouble
	ValueString
	ValueArray
	ValueJSON
	ValueUUID
)

// Value is a typed SQL literal, possibly null.
type Value struct {
	kind ValueKind
	null bool

	b   bool
	i   int64
	u   uint64
	f   float64
	s   string
	arr []Value
	js  json.RawMessage
	uid uuid.UUID
}

func BoolValue(v bool) Value    { return Value{kind: ValueBool, b: v} }
func Int8Value(v int8) Value    { return Value{kind: ValueTinyInt, i: int64(v)} }
func Int16Value(v int16) Value  { return Value{kind: ValueSmallInt, i: int64(v)} }
func Int32Value(v int32) Value  { return Value{kind: ValueInt, i: int64(v)} }
func Int64Value(v int64) Value  { return Value{kind: ValueBigInt, i: v} }
func Uint8Value(v uint8) Value  { return Value{kind: ValueTinyUnsigned, u: uint64(v)} }
func Uint16Value(v uint16) Value { return Value{kind: ValueSmallUnsigned, u: uint64(v)} }
func Uint32Value(v uint32) Value { return Value{kind: ValueUnsigned, u: uint64(v)} }
func Uint64Value(v uint64) Value { return Value{kind: ValueBigUnsigned, u: v} }
func Float32Value(v float32) Value { return Value{kind: ValueFloat, f: float64(v)} }
func Float64Value(v float64) Value { return Value{kind: ValueDouble, f: v} }
func StringValue(v string) Value   { return Value{kind: ValueString, s: v} }

// ArrayValue builds an array literal from element values.
func ArrayValue(elems ...Value) Value {
	return Value{kind: ValueArray, arr: elems}
}

// JSONValue holds raw JSON text, rendered as a quoted string literal.
func JSONValue(raw json.RawMessage) Value {
	return Value{kind: ValueJSON, js: raw}
}

func UUIDValue(v uuid.UUID) Value { return Value{kind: ValueUUID, uid: v} }

// NullOf is the typed null of the given kind.
func NullOf(kind ValueKind) Value {
	return Value{kind: kind, null: true}
}

// NullValue is the typed null whose kind matches the native type T.
func NullValue[T any]() Value {
	var zero T
	return NullOf(ValueOf(zero).kind)
}

// NullableValue converts a pointer: nil becomes the typed null of T.
func NullableValue[T any](p *T) Value {
	if p == nil {
		return NullValue[T]()
	}
	return ValueOf(*p)
}

// ValueOf converts any supported native type to a Value. It panics on
// unsupported types, which is a programmer error at call sites.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case bool:
		return BoolValue(x)
	case int8:
		return Int8Value(x)
	case int16:
		return Int16Value(x)
	case int32:
		return Int32Value(x)
	case int64:
		return Int64Value(x)
	case int:
		return Int64Value(int64(x))
	case uint8:
		return Uint8Value(x)
	case uint16:
		return Uint16Value(x)
	case uint32:
		return Uint32Value(x)
	case uint64:
		return Uint64Value(x)
	case uint:
		return Uint64Value(uint64(x))
	case float32:
		return Float32Value(x)
	case float64:
		return Float64Value(x)
	case string:
		return StringValue(x)
	case json.RawMessage:
		return JSONValue(x)
	case uuid.UUID:
		return UUIDValue(x)
	case []Value:
		return ArrayValue(x...)
	default:
		panic(fmt.Sprintf("pqb: cannot convert %T to a Value", v))
	}
}

// Kind returns the value's kind tag, meaningful for nulls too.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is a typed null.
func (v Value) IsNull() bool { return v.null }

// Native unwraps the value to the form pgx drivers accept. Nulls map to nil,
// arrays to []any.
func (v Value) Native() any {
	if v.null {
		return nil
	}
	switch v.kind {
	case ValueBool:
		return v.b
	case ValueTinyInt, ValueSmallInt, ValueInt, ValueBigInt:
		return v.i
	case ValueTinyUnsigned, ValueSmallUnsigned, ValueUnsigned, ValueBigUnsigned:
		return v.u
	case ValueFloat:
		return float32(v.f)
	case ValueDouble:
		return v.f
	case ValueString:
		return v.s
	case ValueArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Native()
		}
		return out
	case ValueJSON:
		return v.js
	case ValueUUID:
		return v.uid
	}
	return nil
}

// Fingerprint is a structural FNV-1a hash over kind, nullness and literal
// text, usable as a cache key component.
func (v Value) Fingerprint() uint64 {
	var sb strings.Builder
	sb.WriteString("val:")
	sb.WriteString(strconv.Itoa(int(v.kind)))
	sb.WriteString(":")
	if v.null {
		sb.WriteString("null")
	} else {
		writeValueLiteral(&sb, v)
	}
	return fnvString(sb.String())
}

func writeValueLiteral(sb *strings.Builder, v Value) {
	if v.null {
		sb.WriteString("NULL")
		return
	}
	switch v.kind {
	case ValueBool:
		if v.b {
			sb.WriteString("TRUE")
		} else {
			sb.WriteString("FALSE")
		}
	case ValueTinyInt, ValueSmallInt, ValueInt, ValueBigInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case ValueTinyUnsigned, ValueSmallUnsigned, ValueUnsigned, ValueBigUnsigned:
		sb.WriteString(strconv.FormatUint(v.u, 10))
	case ValueFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'f', -1, 32))
	case ValueDouble:
		sb.WriteString(strconv.FormatFloat(v.f, 'f', -1, 64))
	case ValueString:
		writeStringLiteral(sb, v.s)
	case ValueArray:
		if len(v.arr) == 0 {
			sb.WriteString("'{}'")
			return
		}
		sb.WriteString("ARRAY [")
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteString(",")
			}
			writeValueLiteral(sb, e)
		}
		sb.WriteString("]")
	case ValueJSON:
		writeStringLiteral(sb, string(v.js))
	case ValueUUID:
		sb.WriteString("'")
		sb.WriteString(v.uid.String())
		sb.WriteString("'")
	}
}

func stringNeedsEscape(s string) bool {
	for _, r := range s {
		if r == '\'' || r == '\\' || r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

// writeStringLiteral renders a string literal. Plain quoting when the text is
// free of quotes, backslashes and control characters, otherwise the E''
// escape form with backslash escapes and octal for remaining controls.
func writeStringLiteral(sb *strings.Builder, s string) {
	if !stringNeedsEscape(s) {
		sb.WriteString("'")
		sb.WriteString(s)
		sb.WriteString("'")
		return
	}
	sb.WriteString("E'")
	for _, r := range s {
		switch r {
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(sb, `\%03o`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteString("'")
}
