// kind.go — kind metadata records for xgx-taxon core.
//
// Intent:
//   - A Kind is the immutable category record every variant binds to:
//     symbolic name, stable message id, numeric code, default description.
//   - Records never change after construction; accessors are pure reads.
//   - Side classifies a kind as client- or server-caused. It is an explicit
//     field; when a declaration omits it, it is derived from the code.
//
// Conventions (documented, not enforced here):
//   - Kind names are exported-Go-identifier style (IoError, ConfigError);
//     the generator enforces this, the core does not.
//   - Message ids are stable external identifiers (Err-00001). They are NOT
//     unique across kinds; several kinds may share one id for cross-system
//     correlation.
package xgxtaxon

import "fmt"

// Side labels the party a kind attributes its errors to.
//
// Sides are stringly-typed for stability across serialization boundaries:
// the side appears verbatim as the first segment of every class path.
type Side string

const (
	// SideClient marks kinds whose errors are attributed to the caller.
	SideClient Side = "Client"
	// SideServer marks kinds whose errors are attributed to the service.
	SideServer Side = "Server"
)

// IsValid reports whether s is one of the two recognized sides.
func (s Side) IsValid() bool { return s == SideClient || s == SideServer }

// deriveSide maps a numeric code to a Side when a declaration does not
// assert one explicitly. Codes 0..=499 read as client-caused, 500 and above
// as server-caused.
func deriveSide(code int) Side {
	if code >= 0 && code <= 499 {
		return SideClient
	}
	return SideServer
}

// KindDecl is the declaration surface for a single kind.
//
// Side is optional: leave it empty to derive it from Code. An explicit Side
// always wins over the derivation, so taxonomies that disagree with the
// default split can assert their own attribution.
type KindDecl struct {
	Name        string
	MessageID   string
	Code        int
	Description string
	Side        Side
}

// Kind is an immutable error-category record.
//
// All fields are fixed at construction; every accessor returns the same
// value for the life of the process. Kind is a small value type — copies are
// cheap and share no state, so it is safe to pass around and embed in
// package-level vars.
type Kind struct {
	name        string
	messageID   string
	code        int
	description string
	side        Side
}

// NewKind builds a Kind from a declaration, deriving the side from the code
// when the declaration leaves it empty. It never fails: uniqueness and
// identifier hygiene are declaration-time concerns owned by Table and the
// generator, not by the record itself.
func NewKind(d KindDecl) Kind {
	side := d.Side
	if side == "" {
		side = deriveSide(d.Code)
	}
	return Kind{
		name:        d.Name,
		messageID:   d.MessageID,
		code:        d.Code,
		description: d.Description,
		side:        side,
	}
}

// Name returns the unique symbolic identifier of the kind.
func (k Kind) Name() string { return k.name }

// MessageID returns the stable external identifier of the kind. Message ids
// may be shared by several kinds.
func (k Kind) MessageID() string { return k.messageID }

// Code returns the numeric status-like code of the kind.
func (k Kind) Code() int { return k.code }

// Description returns the default human-readable text of the kind. New
// variant instances start with this as their message.
func (k Kind) Description() string { return k.description }

// Side returns the attribution of the kind.
func (k Kind) Side() Side { return k.side }

// IsZero reports whether k is the zero Kind, i.e. not produced by NewKind or
// a Table. Decoded snapshots carry a zero Kind until resolved against a
// table.
func (k Kind) IsZero() bool { return k == Kind{} }

// Class derives the identity string for a variant bound to this kind:
//
//	<side>::<kind-name>::<variant-name>
//
// The result is computed once at variant construction and stored; it always
// reflects the kind bound to the concrete variant type.
func (k Kind) Class(variant string) string {
	return string(k.side) + "::" + k.name + "::" + variant
}

// Render produces the canonical display line for a variant instance:
//
//	[<message-id>] <variant-name> (<code>): <message>
//
// The format is a stable external contract; tests may compare it verbatim.
func (k Kind) Render(variant, message string) string {
	return fmt.Sprintf("[%s] %s (%d): %s", k.messageID, variant, k.code, message)
}
