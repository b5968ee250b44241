// details.go — immutable sorted details mapping for xgx-taxon core.
//
// Design:
//   • Internal representation: []Entry kept sorted by key, keys unique
//     (deterministic iteration, ordered JSON output, DeepEqual-friendly).
//   • nil Map means "no details attached"; a non-nil Map — even an empty
//     one — means details are present. The distinction matters: converting
//     an error records an origin even when the origin carried no details.
//   • Builders are non-mutating: Set returns a NEW Map with a fresh backing
//     array, so published snapshots can be shared across goroutines without
//     locks.
package xgxtaxon

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// Entry is a single key-value pair in a details mapping.
// Keys SHOULD be snake_case for consistency, but the core does not enforce it.
type Entry struct {
	Key   string
	Value Value
}

// Map is an ordered details mapping. Treat it as immutable; never modify
// entries in place once published.
type Map []Entry

// emptyMap is a canonical present-but-empty mapping.
var emptyMap = make(Map, 0)

// NewMap builds a present Map from entries. Entries are re-sorted by key;
// on duplicate keys the later argument wins.
func NewMap(entries ...Entry) Map {
	if len(entries) == 0 {
		return emptyMap
	}
	out := make(Map, len(entries))
	copy(out, entries)
	slices.SortStableFunc(out, func(a, b Entry) int { return cmp.Compare(a.Key, b.Key) })
	// Collapse duplicate keys keeping the last occurrence; the stable sort
	// preserved argument order within each run of equal keys.
	w := 0
	for r := 0; r < len(out); r++ {
		if r+1 < len(out) && out[r+1].Key == out[r].Key {
			continue
		}
		out[w] = out[r]
		w++
	}
	return out[:w:w]
}

// MapOf parses a variadic key-value list into a present Map.
//
// Rules:
//   • Pairs are read left-to-right as (key, value).
//   • Keys MUST be strings; a non-string "key" drops the ENTIRE PAIR (the
//     key and its following value, if any), which keeps later pairs aligned.
//   • A trailing key with no value becomes (key, null).
//   • Values are coerced via ValueOf; anything it rejects is rendered with
//     fmt.Sprint and kept as a string, so attaching details never fails.
func MapOf(kv ...any) Map {
	if len(kv) == 0 {
		return emptyMap
	}
	entries := make([]Entry, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			// Drop the entire pair to prevent misalignment of later pairs.
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var raw any
		if i+1 < len(kv) {
			raw = kv[i+1]
			i += 2
		} else {
			// Trailing key with no value → null.
			i++
		}
		entries = append(entries, Entry{Key: k, Value: coerceValue(raw)})
	}
	return NewMap(entries...)
}

// coerceValue renders x as a Value without failing: ValueOf when it can,
// a fmt-rendered string otherwise.
func coerceValue(x any) Value {
	v, err := ValueOf(x)
	if err != nil {
		return StringValue(fmt.Sprint(x))
	}
	return v
}

// Len reports the number of entries.
func (m Map) Len() int { return len(m) }

// Get returns the value stored under key.
func (m Map) Get(key string) (Value, bool) {
	i, ok := m.search(key)
	if !ok {
		return Value{}, false
	}
	return m[i].Value, true
}

// Has reports whether key is present.
func (m Map) Has(key string) bool {
	_, ok := m.search(key)
	return ok
}

// Keys returns the keys in order as a fresh slice (nil when empty).
func (m Map) Keys() []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, len(m))
	for i, e := range m {
		out[i] = e.Key
	}
	return out
}

// Set returns a NEW Map with key bound to v. The receiver is never modified;
// a nil receiver is treated as empty, so Set is also how an absent mapping
// becomes present.
func (m Map) Set(key string, v Value) Map {
	i, found := m.search(key)
	if found {
		out := make(Map, len(m))
		copy(out, m)
		out[i].Value = v
		return out
	}
	out := make(Map, len(m)+1)
	copy(out, m[:i])
	out[i] = Entry{Key: key, Value: v}
	copy(out[i+1:], m[i:])
	return out
}

// Delete returns a NEW Map without key. Deleting the only entry yields a
// present empty Map, not an absent one.
func (m Map) Delete(key string) Map {
	i, found := m.search(key)
	if !found {
		return m.Clone()
	}
	if len(m) == 1 {
		return emptyMap
	}
	out := make(Map, len(m)-1)
	copy(out, m[:i])
	copy(out[i:], m[i+1:])
	return out
}

// Clone returns a copy of the mapping. nil stays nil, so presence survives
// a clone.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	if len(m) == 0 {
		return emptyMap
	}
	out := make(Map, len(m))
	copy(out, m)
	return out
}

// Equal reports whether two mappings agree on presence, keys, and values.
func (m Map) Equal(o Map) bool {
	if (m == nil) != (o == nil) {
		return false
	}
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i].Key != o[i].Key || !m[i].Value.Equal(o[i].Value) {
			return false
		}
	}
	return true
}

// search locates key in the sorted entries.
func (m Map) search(key string) (int, bool) {
	return slices.BinarySearchFunc(m, key, func(e Entry, k string) int {
		return cmp.Compare(e.Key, k)
	})
}

// MarshalJSON encodes the mapping as a JSON object in key order; an absent
// (nil) mapping encodes as null.
func (m Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := e.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", e.Key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes null (absent) or a JSON object. Object keys are
// re-sorted, so decoded mappings satisfy the ordering invariant regardless
// of input order.
func (m *Map) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*m = nil
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	entries := make([]Entry, 0, len(raw))
	for k, rv := range raw {
		var v Value
		if err := v.UnmarshalJSON(rv); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		entries = append(entries, Entry{Key: k, Value: v})
	}
	*m = NewMap(entries...)
	return nil
}
