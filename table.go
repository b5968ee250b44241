// table.go — the frozen kind registry for xgx-taxon core.
//
// Intent:
//   - A Table is the closed, process-wide registry mapping kind names to
//     Kind records. It is built once — at package init in generated code —
//     and is read-only afterwards.
//   - Duplicate kind names fail construction with a descriptive error; they
//     are never deferred to lookup time.
//   - Reads need no locking: publish the table before any reader starts and
//     the usual happens-before rules make concurrent reads safe.
//
// Construction discipline: write before any reader starts, read-only after.
package xgxtaxon

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateKind reports a kind name declared more than once in a single
// table. Matched with errors.Is against NewTable failures.
var ErrDuplicateKind = errors.New("duplicate kind name")

// Table is a closed, immutable kind registry.
//
// The zero Table is empty and usable for reads. Tables are constructed in
// one shot and never grow; there is no runtime registration.
type Table struct {
	byName map[string]Kind
	order  []Kind
}

// NewTable builds a frozen table from declarations, preserving declaration
// order. It fails with ErrDuplicateKind (wrapped with the offending name) if
// a kind name appears twice.
func NewTable(decls ...KindDecl) (*Table, error) {
	t := &Table{
		byName: make(map[string]Kind, len(decls)),
		order:  make([]Kind, 0, len(decls)),
	}
	for _, d := range decls {
		if _, dup := t.byName[d.Name]; dup {
			return nil, fmt.Errorf("kind %q: %w", d.Name, ErrDuplicateKind)
		}
		k := NewKind(d)
		t.byName[d.Name] = k
		t.order = append(t.order, k)
	}
	return t, nil
}

// MustTable is NewTable for package-level vars: it panics on duplicate kind
// names. Generated code uses it so that a bad batch fails at process start,
// never at first use.
func MustTable(decls ...KindDecl) *Table {
	t, err := NewTable(decls...)
	if err != nil {
		panic("xgxtaxon: " + err.Error())
	}
	return t
}

// Kind looks up a kind by its symbolic name.
func (t *Table) Kind(name string) (Kind, bool) {
	if t == nil {
		return Kind{}, false
	}
	k, ok := t.byName[name]
	return k, ok
}

// MustKind is Kind for generated code: it panics when name is not in the
// table. Manifest validation guarantees the name exists, so a panic here
// means the generated file and its table went out of sync.
func (t *Table) MustKind(name string) Kind {
	k, ok := t.Kind(name)
	if !ok {
		panic(fmt.Sprintf("xgxtaxon: kind %q not declared in table", name))
	}
	return k
}

// Kinds returns a defensive copy of the declared kinds in declaration order.
func (t *Table) Kinds() []Kind {
	if t == nil || len(t.order) == 0 {
		return nil
	}
	out := make([]Kind, len(t.order))
	copy(out, t.order)
	return out
}

// Len reports the number of declared kinds.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Resolve re-binds a snapshot to its Kind using the kind-name segment of the
// snapshot's class path. Decoded snapshots and lineage entries carry a zero
// Kind; Resolve restores the metadata needed for display and predicates.
// The boolean reports whether the class named a kind this table knows.
func (t *Table) Resolve(e Error) (Error, bool) {
	_, kindName, _, ok := splitClass(e.class)
	if !ok {
		return e, false
	}
	k, ok := t.Kind(kindName)
	if !ok {
		return e, false
	}
	e.kind = k
	return e, true
}

// Decode revives a snapshot from its JSON form, resolving the kind through
// the table when the class path names a declared kind. An unknown kind name
// is not an error: the snapshot keeps a zero Kind and the class string
// remains the identity (Resolve reports the distinction).
func (t *Table) Decode(data []byte) (Error, error) {
	var e Error
	if err := json.Unmarshal(data, &e); err != nil {
		return Error{}, fmt.Errorf("decode error snapshot: %w", err)
	}
	if resolved, ok := t.Resolve(e); ok {
		return resolved, nil
	}
	return e, nil
}

// splitClass decomposes "<side>::<kind>::<variant>" into its segments.
// Variant names may themselves contain "::" only if produced outside this
// package; the first two separators win, the rest stays in variant.
func splitClass(class string) (side, kind, variant string, ok bool) {
	parts := strings.SplitN(class, "::", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
