// convert.go — conversion bookkeeping: the origin record and its traversal.
//
// Scope (tiny core):
//   - ConvertDetails: the reserved-key algorithm every conversion
//     constructor runs. The origin's details RELOCATE to the top level of
//     the new mapping; the origin itself is embedded stripped of details
//     under OriginKey, so records never nest unboundedly.
//   - Origin / Lineage: read recorded origins back out of the details.
//
// The origin is DATA (a nested mapping value), not a wrapped error:
// conversion crosses a taxonomy boundary, and what is kept is a
// serializable snapshot, not a live causal link. errors.Is/As do not
// traverse it; Origin and Lineage do.
package xgxtaxon

// OriginKey is the reserved details key under which a conversion records
// the error it replaced.
const OriginKey = "origin"

// maxLineage bounds origin-chain traversal. Conversions made here embed
// stripped records (chain length one), but decoded foreign payloads may
// nest arbitrarily.
const maxLineage = 1 << 8

// ConvertDetails builds the details mapping for an error converted from
// origin:
//
//	base   := origin's details if present, else an empty mapping
//	record := origin with its details cleared
//	result := base with OriginKey bound to record
//
// origin's own detail keys therefore survive at the TOP level of the new
// mapping, while the record under OriginKey stays small and flat. If origin
// already carried an OriginKey entry from an earlier conversion, the new
// record replaces it. The result is always a present mapping.
func ConvertDetails(origin Error) Map {
	base := origin.details.Clone()
	if base == nil {
		base = emptyMap
	}
	return base.Set(OriginKey, originRecord(origin))
}

// originRecord renders the stripped origin as a mapping value:
// {"class": ..., "message": ...}. The kind is not recorded; it is
// re-derivable from the class path via Table.Resolve.
func originRecord(e Error) Value {
	m := NewMap(
		Entry{Key: "class", Value: StringValue(e.class)},
		Entry{Key: "message", Value: StringValue(e.message)},
	)
	return Value{kind: MapKind, m: m}
}

// Origin reconstructs the error recorded under OriginKey, if any. The
// reconstructed Error carries a zero Kind (resolve it through a Table when
// needed). Records written by ConvertDetails carry class and message only;
// decoded foreign records may also carry a nested details mapping, which is
// preserved.
func (e Error) Origin() (Error, bool) {
	v, ok := e.details.Get(OriginKey)
	if !ok {
		return Error{}, false
	}
	record, ok := v.Map()
	if !ok {
		return Error{}, false
	}
	class, ok := stringAt(record, "class")
	if !ok {
		return Error{}, false
	}
	message, _ := stringAt(record, "message")
	out := Error{class: class, message: message}
	if dv, ok := record.Get("details"); ok {
		if dm, ok := dv.Map(); ok {
			out.details = dm
		}
	}
	return out, true
}

// Lineage returns the chain of recorded origins, nearest first. It is empty
// when no origin is recorded, and capped against runaway nesting in decoded
// payloads.
func (e Error) Lineage() []Error {
	var out []Error
	cur := e
	for len(out) < maxLineage {
		origin, ok := cur.Origin()
		if !ok {
			break
		}
		out = append(out, origin)
		cur = origin
	}
	return out
}

// stringAt reads a string-typed value from a mapping.
func stringAt(m Map, key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	return v.Text()
}
