// predicates.go — minimal, stdlib-aligned predicates for taxonomy errors.
//
// Scope:
//   • Zero-policy helpers that answer common classification questions.
//   • Interop-first: errors.As traversal, so a taxonomy error stays
//     classifiable even when buried under fmt.Errorf("%w") wrappers or
//     errors.Join trees.
//
// Out of scope (by design):
//   • HTTP/status mapping, retry backoff policy, logging.
package xgxtaxon

import (
	"errors"
)

// KindOf returns the first taxonomy kind along err's chain.
func KindOf(err error) (Kind, bool) {
	if err == nil {
		return Kind{}, false
	}
	var ae AsError
	if errors.As(err, &ae) {
		return ae.Kind(), true
	}
	return Kind{}, false
}

// ClassOf returns the first classification path along err's chain, or ""
// if the chain holds no taxonomy error.
func ClassOf(err error) string {
	if err == nil {
		return ""
	}
	var ae AsError
	if errors.As(err, &ae) {
		return ae.Class()
	}
	return ""
}

// MessageIDOf returns the first message id along err's chain, or "".
func MessageIDOf(err error) string {
	k, ok := KindOf(err)
	if !ok {
		return ""
	}
	return k.MessageID()
}

// HasKind reports whether any taxonomy error in err's chain belongs to the
// kind with the given name.
func HasKind(err error, kindName string) bool {
	k, ok := KindOf(err)
	return ok && k.Name() == kindName
}

// HasClass reports whether any taxonomy error in err's chain carries the
// exact classification path.
func HasClass(err error, class string) bool {
	if err == nil || class == "" {
		return false
	}
	var ae AsError
	if errors.As(err, &ae) {
		return ae.Class() == class
	}
	return false
}

// IsClientSide reports whether err classifies as a client-side failure.
func IsClientSide(err error) bool {
	k, ok := KindOf(err)
	return ok && k.Side() == SideClient
}

// IsServerSide reports whether err classifies as a server-side failure.
func IsServerSide(err error) bool {
	k, ok := KindOf(err)
	return ok && k.Side() == SideServer
}
