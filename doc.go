// doc.go — package documentation for xgx-taxon
//
// Package xgxtaxon provides a declarative error-taxonomy core: a frozen
// table of error kinds (stable code, message id, description, side), erased
// error snapshots that carry a class path and structured details, and the
// conversion algebra that lets one error absorb another without losing its
// identity. It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # Kinds, Variants, Classes
//
// A KIND is a category declared once per taxonomy: name, message id, numeric
// code, human description, and a side (Client/Server, derived from the code
// unless declared). A VARIANT is a concrete error type bound to exactly one
// kind; variant types are produced ahead of time by the taxongen tool (see
// cmd/taxongen) rather than registered at runtime. Every error identifies
// itself by a CLASS path:
//
//	<Side>::<KindName>::<VariantName>
//
// which survives serialization and lets a receiver re-bind the kind through
// Table.Resolve without sharing code with the producer.
//
// # Construction and Mutation
//
// Error values are immutable. Builder methods return a NEW value:
//
//	err := xgxtaxon.From(os.ErrNotExist).
//	    WithMessage("profile lookup failed").
//	    WithDetail("user_id", 42)
//
// Sharing error values across goroutines therefore needs no synchronization.
//
// # Conversion and Origins
//
// Converting an error into another variant absorbs the original as data: the
// original's details relocate to the top level of the new mapping, and the
// original itself — stripped of details — is recorded under the reserved key
// "origin". Use Origin/Lineage to read the records back. Conversion is a
// taxonomy-boundary operation, so errors.Is/As deliberately do NOT traverse
// origin records; they remain serializable data, not live causal links.
//
// # Details
//
// Details form a sorted, immutable key→Value mapping. Values are a closed
// sum (null, string, int, float, bool, sequence, mapping), so every payload
// round-trips JSON deterministically. An ABSENT mapping (nil) is distinct
// from a present-but-empty one; Details() reports the difference.
//
// # Formatting
//
// Taxonomy errors implement fmt.Formatter:
//   - %v, %s → concise, single-line Error()
//   - %+v    → verbose, multi-line (class, code, message id, details, origin)
//   - %q     → quoted Error()
//
// Variant renderings read "[<msg_id>] <Variant> (<code>): <message>"; erased
// snapshots read "[<msg_id>] <class path> (<code>) - <message>", so the two
// stay distinguishable in logs.
//
// # Interop
//
//   - errors.Is/As work as expected over wrap chains; From finds a taxonomy
//     error anywhere inside a foreign chain before falling back.
//   - Predicates (KindOf, HasKind, IsClientSide, ...) classify arbitrary
//     errors without requiring the caller to know concrete types.
//   - JSON payloads carry class/message/details only; kinds re-bind through
//     a Table on the receiving side.
//
// # Performance Notes
//
// The core favors predictable cost over cleverness:
//   - Copy-on-write: builders copy the details slice, never share backing
//     arrays; copy-on-read accessors return fresh slices.
//   - Lookups: kind and detail lookups are map/binary-search, no reflection.
//   - Formatting: verbose %+v is lazy; concise %v stays cheap.
//
// See the taxongen tool for generating variant types from a YAML manifest.
package xgxtaxon
