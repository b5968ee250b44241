// predicates_test.go — verification of chain-aware classification helpers.
package xgxtaxon

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf_FindsKindThroughWrapChain(t *testing.T) {
	t.Parallel()

	v := newMissingProfileError()
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", v))

	k, ok := KindOf(wrapped)
	if !ok {
		t.Fatalf("kind not found through chain")
	}
	if k.Name() != "IoError" {
		t.Fatalf("kind=%q", k.Name())
	}
}

func TestKindOf_NilAndForeignErrors(t *testing.T) {
	t.Parallel()

	if _, ok := KindOf(nil); ok {
		t.Fatalf("KindOf(nil) found a kind")
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("KindOf(plain) found a kind")
	}
}

func TestClassOf_And_MessageIDOf(t *testing.T) {
	t.Parallel()

	v := newMissingProfileError()
	wrapped := fmt.Errorf("ctx: %w", v)

	if got := ClassOf(wrapped); got != "Server::IoError::MissingProfileError" {
		t.Fatalf("ClassOf=%q", got)
	}
	if got := MessageIDOf(wrapped); got != "Err-00001" {
		t.Fatalf("MessageIDOf=%q", got)
	}
	if ClassOf(nil) != "" || MessageIDOf(nil) != "" {
		t.Fatalf("nil input must map to empty strings")
	}
	if ClassOf(errors.New("x")) != "" {
		t.Fatalf("foreign error produced a class")
	}
}

func TestHasKind(t *testing.T) {
	t.Parallel()

	v := newMissingProfileError()
	wrapped := fmt.Errorf("op: %w", v)

	if !HasKind(wrapped, "IoError") {
		t.Fatalf("HasKind(IoError)=false")
	}
	if HasKind(wrapped, "ValidationError") {
		t.Fatalf("HasKind matched the wrong kind")
	}
	if HasKind(nil, "IoError") {
		t.Fatalf("HasKind(nil)=true")
	}
}

func TestHasClass(t *testing.T) {
	t.Parallel()

	v := newMissingProfileError()
	wrapped := fmt.Errorf("op: %w", v)

	if !HasClass(wrapped, "Server::IoError::MissingProfileError") {
		t.Fatalf("exact class not matched")
	}
	if HasClass(wrapped, "Server::IoError::OtherError") {
		t.Fatalf("wrong class matched")
	}
	if HasClass(wrapped, "") {
		t.Fatalf("empty class matched")
	}
}

func TestSidePredicates(t *testing.T) {
	t.Parallel()

	tbl := MustTable(testDecls()...)

	server := Capture(newMissingProfileError()) // IoError, 500
	if !IsServerSide(server) || IsClientSide(server) {
		t.Fatalf("500-coded kind misclassified")
	}

	clientKind := tbl.MustKind("ValidationError") // 400
	client := missingProfileError{
		kind:    clientKind,
		class:   clientKind.Class("BlankFieldError"),
		message: clientKind.Description(),
	}
	wrapped := fmt.Errorf("request rejected: %w", client)
	if !IsClientSide(wrapped) || IsServerSide(wrapped) {
		t.Fatalf("400-coded kind misclassified through chain")
	}

	if IsClientSide(nil) || IsServerSide(nil) {
		t.Fatalf("nil classified to a side")
	}
	if IsClientSide(errors.New("x")) || IsServerSide(errors.New("x")) {
		t.Fatalf("foreign error classified to a side")
	}
}

func TestPredicates_SeeErasedSnapshotsInChains(t *testing.T) {
	t.Parallel()

	snap := From(errors.New("boom"))
	wrapped := fmt.Errorf("handler: %w", snap)

	k, ok := KindOf(wrapped)
	if !ok || k != FallbackKind {
		t.Fatalf("erased snapshot not seen: kind=%+v ok=%v", k, ok)
	}
	if !IsServerSide(wrapped) {
		t.Fatalf("fallback kind must classify server-side")
	}
}
