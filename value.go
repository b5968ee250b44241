// value.go — the tagged structured value carried by details mappings.
//
// Design:
//   - Details payloads must round-trip deterministically, so the value model
//     is an explicit sum type (null | string | int | float | bool | sequence
//     | mapping) rather than bare `any`.
//   - Values are immutable: constructors copy what they are given, readers
//     copy what they return.
//   - JSON is the canonical encoding. Integers and floats stay distinct
//     through a round-trip (the decoder reads numbers as json.Number).
package xgxtaxon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind discriminates the arms of the Value sum type.
type ValueKind uint8

const (
	NullKind ValueKind = iota
	StringKind
	IntKind
	FloatKind
	BoolKind
	SeqKind
	MapKind
)

// String names the kind for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case NullKind:
		return "null"
	case StringKind:
		return "string"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case SeqKind:
		return "seq"
	case MapKind:
		return "map"
	default:
		return "invalid"
	}
}

// Value is one structured detail value. The zero Value is null.
type Value struct {
	kind ValueKind
	str  string
	i    int64
	f    float64
	b    bool
	seq  []Value
	m    Map
}

// NullValue returns the null Value (also the zero value).
func NullValue() Value { return Value{} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: StringKind, str: s} }

// IntValue wraps a signed integer.
func IntValue(i int64) Value { return Value{kind: IntKind, i: i} }

// FloatValue wraps a float.
func FloatValue(f float64) Value { return Value{kind: FloatKind, f: f} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: BoolKind, b: b} }

// SeqValue wraps a sequence. The elements are copied.
func SeqValue(vs ...Value) Value {
	out := make([]Value, len(vs))
	copy(out, vs)
	return Value{kind: SeqKind, seq: out}
}

// MapValue wraps a mapping. A nil Map normalizes to an empty present one.
func MapValue(m Map) Value {
	if m == nil {
		m = Map{}
	}
	return Value{kind: MapKind, m: m.Clone()}
}

// ValueOf coerces a plain Go value into a Value. Supported inputs: nil,
// string, bool, all fixed-size signed/unsigned integers, int, float32/64,
// Value, Map, []Value, []string, []any, and map[string]any. Anything else is
// an error; MapOf falls back to fmt-rendering in that case so that attaching
// details stays total.
func ValueOf(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return v, nil
	case string:
		return StringValue(v), nil
	case bool:
		return BoolValue(v), nil
	case int:
		return IntValue(int64(v)), nil
	case int8:
		return IntValue(int64(v)), nil
	case int16:
		return IntValue(int64(v)), nil
	case int32:
		return IntValue(int64(v)), nil
	case int64:
		return IntValue(v), nil
	case uint:
		return IntValue(int64(v)), nil
	case uint8:
		return IntValue(int64(v)), nil
	case uint16:
		return IntValue(int64(v)), nil
	case uint32:
		return IntValue(int64(v)), nil
	case uint64:
		if v > 1<<63-1 {
			return NullValue(), fmt.Errorf("uint64 value %d overflows int64", v)
		}
		return IntValue(int64(v)), nil
	case float32:
		return FloatValue(float64(v)), nil
	case float64:
		return FloatValue(v), nil
	case Map:
		return MapValue(v), nil
	case []Value:
		return SeqValue(v...), nil
	case []string:
		seq := make([]Value, len(v))
		for i, s := range v {
			seq[i] = StringValue(s)
		}
		return Value{kind: SeqKind, seq: seq}, nil
	case []any:
		seq := make([]Value, len(v))
		for i, e := range v {
			ev, err := ValueOf(e)
			if err != nil {
				return NullValue(), fmt.Errorf("sequence index %d: %w", i, err)
			}
			seq[i] = ev
		}
		return Value{kind: SeqKind, seq: seq}, nil
	case map[string]any:
		m := Map{}
		for key, e := range v {
			ev, err := ValueOf(e)
			if err != nil {
				return NullValue(), fmt.Errorf("key %q: %w", key, err)
			}
			m = m.Set(key, ev)
		}
		return MapValue(m), nil
	default:
		return NullValue(), fmt.Errorf("unsupported detail value type %T", x)
	}
}

// Kind returns the discriminator.
func (v Value) Kind() ValueKind { return v.kind }

// String renders the value as text: exact for strings, compact and readable
// for everything else. It never fails, so values drop into fmt verbs and log
// fields without ceremony.
func (v Value) String() string {
	switch v.kind {
	case NullKind:
		return "null"
	case StringKind:
		return v.str
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case FloatKind:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.b)
	case SeqKind:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.seq {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case MapKind:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, e := range v.m {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(e.Key)
			sb.WriteByte('=')
			sb.WriteString(e.Value.String())
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		return "invalid"
	}
}

// Int64 reads the int arm.
func (v Value) Int64() (int64, bool) {
	if v.kind != IntKind {
		return 0, false
	}
	return v.i, true
}

// Float64 reads the float arm.
func (v Value) Float64() (float64, bool) {
	if v.kind != FloatKind {
		return 0, false
	}
	return v.f, true
}

// Bool reads the bool arm.
func (v Value) Bool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.b, true
}

// Text reads the string arm. Unlike String it reports whether the value
// actually is a string.
func (v Value) Text() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.str, true
}

// Seq reads the sequence arm as a defensive copy.
func (v Value) Seq() ([]Value, bool) {
	if v.kind != SeqKind {
		return nil, false
	}
	out := make([]Value, len(v.seq))
	copy(out, v.seq)
	return out, true
}

// Map reads the mapping arm as a defensive copy.
func (v Value) Map() (Map, bool) {
	if v.kind != MapKind {
		return nil, false
	}
	return v.m.Clone(), true
}

// Equal reports structural equality across all arms.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case NullKind:
		return true
	case StringKind:
		return v.str == o.str
	case IntKind:
		return v.i == o.i
	case FloatKind:
		return v.f == o.f
	case BoolKind:
		return v.b == o.b
	case SeqKind:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case MapKind:
		return v.m.Equal(o.m)
	default:
		return false
	}
}

// MarshalJSON encodes the value in its canonical JSON form. Mapping keys are
// already sorted, so the output is deterministic.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case NullKind:
		return []byte("null"), nil
	case StringKind:
		return json.Marshal(v.str)
	case IntKind:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case FloatKind:
		return floatJSON(v.f)
	case BoolKind:
		return []byte(strconv.FormatBool(v.b)), nil
	case SeqKind:
		if v.seq == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.seq)
	case MapKind:
		return v.m.MarshalJSON()
	default:
		return nil, fmt.Errorf("cannot encode value kind %d", v.kind)
	}
}

// floatJSON renders a float in JSON form, keeping a fractional marker so
// whole floats decode back onto the float arm (42.0, never 42).
func floatJSON(f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("cannot encode non-finite float %v", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

// UnmarshalJSON decodes any JSON value, preserving the int/float split via
// json.Number.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := valueFromDecoded(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// valueFromDecoded converts the decoder's generic tree (with json.Number
// leaves) into a Value.
func valueFromDecoded(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return NullValue(), nil
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		s := t.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := t.Int64(); err == nil {
				return IntValue(i), nil
			}
		}
		f, err := t.Float64()
		if err != nil {
			return NullValue(), fmt.Errorf("number %q: %w", s, err)
		}
		return FloatValue(f), nil
	case []any:
		seq := make([]Value, len(t))
		for i, e := range t {
			ev, err := valueFromDecoded(e)
			if err != nil {
				return NullValue(), err
			}
			seq[i] = ev
		}
		return Value{kind: SeqKind, seq: seq}, nil
	case map[string]any:
		m := Map{}
		for key, e := range t {
			ev, err := valueFromDecoded(e)
			if err != nil {
				return NullValue(), err
			}
			m = m.Set(key, ev)
		}
		return Value{kind: MapKind, m: m}, nil
	default:
		return NullValue(), fmt.Errorf("unsupported JSON shape %T", raw)
	}
}
