// error.go — the capability contract and the erased error snapshot.
//
// Scope (tiny core):
//   - AsError: the contract every taxonomy variant satisfies, embedding the
//     stdlib error interface so variants drop into any Go error path.
//   - Error: an erased, self-describing snapshot of any AsError. It is what
//     crosses API boundaries, what serializes, and what a conversion records
//     as the origin of the new error.
//   - All fluent methods are NON-MUTATING: they return a new value
//     (copy-on-write), so shared error values need no synchronization.
//
// Interop:
//   - errors.Is/As traverse wrap chains as usual; From uses errors.As to
//     find a taxonomy error anywhere inside a foreign chain.
//   - The erased Error deliberately has no Unwrap: converted origins are
//     recorded data, not live causal links. Use Origin/Lineage to walk them.
package xgxtaxon

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AsError is the capability contract for taxonomy errors.
//
// Every generated variant implements it with value receivers; hand-written
// types may join the taxonomy the same way. Readers MUST be cheap and
// side-effect free, and Details MUST return a copy (copy-on-read) so callers
// can never corrupt stored state.
type AsError interface {
	// error supplies the canonical one-line rendering. Keep it concise;
	// structured export belongs to Details and MarshalJSON.
	error

	// Kind returns the declared kind this error belongs to.
	Kind() Kind

	// Class returns the full classification path,
	// "<Side>::<KindName>::<VariantName>".
	Class() string

	// Message returns the human-readable message.
	Message() string

	// Details returns a COPY of the structured details and whether any are
	// attached. (nil, false) means absent; an empty present mapping is
	// (Map{}, true).
	Details() (Map, bool)
}

// FallbackKind classifies errors that never declared a taxonomy kind, such
// as foreign errors absorbed by From.
var FallbackKind = NewKind(KindDecl{
	Name:        "InternalServerError",
	MessageID:   "MSG000",
	Code:        500,
	Description: "Internal Server Error",
})

// Error is the erased snapshot of a taxonomy error.
//
// The zero Error is empty (IsZero reports true). A decoded Error carries a
// zero Kind until a Table re-binds it via Resolve; class, message, and
// details are complete either way.
type Error struct {
	kind    Kind
	class   string
	message string
	details Map
}

var _ AsError = Error{}

// Kind returns the kind snapshot taken at capture time (zero after Decode
// until resolved).
func (e Error) Kind() Kind { return e.kind }

// Class returns the classification path recorded at construction.
func (e Error) Class() string { return e.class }

// Message returns the human-readable message.
func (e Error) Message() string { return e.message }

// Details returns a copy of the details mapping and whether one is attached.
func (e Error) Details() (Map, bool) {
	if e.details == nil {
		return nil, false
	}
	return e.details.Clone(), true
}

// Error renders the erased form: "[<messageID>] <class> (<code>) - <message>".
// The class path stands in for the variant name, which keeps erased and
// variant renderings distinguishable in logs.
func (e Error) Error() string {
	return fmt.Sprintf("[%s] %s (%d) - %s", e.kind.MessageID(), e.class, e.kind.Code(), e.message)
}

// IsZero reports whether e is the zero Error (e.g. From(nil)).
func (e Error) IsZero() bool {
	return e.kind.IsZero() && e.class == "" && e.message == "" && e.details == nil
}

// WithMessage returns a NEW Error with the message replaced.
func (e Error) WithMessage(msg string) Error {
	e.message = msg
	e.details = e.details.Clone()
	return e
}

// WithDetails returns a NEW Error with the details mapping replaced by a
// copy of m. Passing nil detaches details entirely.
func (e Error) WithDetails(m Map) Error {
	e.details = m.Clone()
	return e
}

// WithDetail returns a NEW Error with one detail bound. The value is coerced
// like MapOf values: ValueOf when possible, fmt-rendered string otherwise.
// An absent mapping becomes present.
func (e Error) WithDetail(key string, val any) Error {
	e.details = e.details.Set(key, coerceValue(val))
	return e
}

// Clone returns an independent copy (details deep-copied).
func (e Error) Clone() Error {
	e.details = e.details.Clone()
	return e
}

// Equal reports field-wise equality, including details presence.
func (e Error) Equal(o Error) bool {
	return e.kind == o.kind &&
		e.class == o.class &&
		e.message == o.message &&
		e.details.Equal(o.details)
}

// Capture erases a taxonomy error into its snapshot form.
func Capture(e AsError) Error {
	var details Map
	if d, ok := e.Details(); ok {
		details = d.Clone()
		if details == nil {
			details = emptyMap
		}
	}
	return Error{
		kind:    e.Kind(),
		class:   e.Class(),
		message: e.Message(),
		details: details,
	}
}

// From converts any error into an erased snapshot without adding policy.
//   - nil → zero Error (contrast Capture, which requires a taxonomy error)
//   - a chain containing an AsError → that error, captured
//   - any other error → FallbackKind with the error text as message
func From(err error) Error {
	if err == nil {
		return Error{}
	}
	var ae AsError
	if errors.As(err, &ae) {
		return Capture(ae)
	}
	return Error{
		kind:    FallbackKind,
		class:   FallbackKind.Class("Error"),
		message: err.Error(),
	}
}

// MarshalJSON encodes class, message, and details. The kind is deliberately
// not serialized: it is re-derivable from the class path via Table.Resolve,
// and omitting it keeps payloads stable across taxonomy edits.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class   string `json:"class"`
		Message string `json:"message"`
		Details Map    `json:"details"`
	}{e.class, e.message, e.details})
}

// UnmarshalJSON decodes a snapshot. The kind is left zero; use Table.Resolve
// (or Table.Decode in one step) to re-bind it.
func (e *Error) UnmarshalJSON(data []byte) error {
	var raw struct {
		Class   string `json:"class"`
		Message string `json:"message"`
		Details Map    `json:"details"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Error{class: raw.Class, message: raw.Message, details: raw.Details}
	return nil
}
