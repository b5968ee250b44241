// validate.go — declaration-time rules for taxonomy manifests.
//
// Every violation is a *DeclError carrying the manifest line and wrapping
// exactly one sentinel, and Validate reports ALL of them (errors.Join), not
// just the first: a manifest author fixes the whole batch in one pass.
package taxongen

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"

	xgxtaxon "github.com/xgx-io/xgx-taxon"
)

// Validation sentinels. Duplicate kind names wrap xgxtaxon.ErrDuplicateKind,
// the same sentinel table construction fails with at runtime.
var (
	ErrUnknownKind      = errors.New("variant references undeclared kind")
	ErrDuplicateVariant = errors.New("duplicate variant name")
	ErrBadIdentifier    = errors.New("not a usable Go identifier")
	ErrBadDecl          = errors.New("invalid declaration")
)

// DeclError is one rule violation located at its manifest line.
type DeclError struct {
	Path string // manifest file; empty when parsed from memory
	Line int    // 1-based; zero when unknown
	Rule error  // the sentinel this violation wraps
	Msg  string
}

func (e *DeclError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s: %v", e.Path, e.Line, e.Msg, e.Rule)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Rule)
	default:
		return fmt.Sprintf("%s: %v", e.Msg, e.Rule)
	}
}

func (e *DeclError) Unwrap() error { return e.Rule }

var (
	// Kind and variant names become exported type-level identifiers.
	identRE = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)
	// The emitted package clause.
	packageRE = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// reservedVariants are names the emitted file already uses at package scope.
var reservedVariants = map[string]bool{
	"Kinds": true,
}

// Validate applies every declaration rule to m. It returns nil for a valid
// manifest, otherwise an errors.Join of one *DeclError per violation; match
// rules with errors.Is against the sentinels.
func Validate(m *Manifest) error {
	var errs []error
	fail := func(line int, rule error, format string, args ...any) {
		errs = append(errs, &DeclError{
			Path: m.path,
			Line: line,
			Rule: rule,
			Msg:  fmt.Sprintf(format, args...),
		})
	}

	if m.Version != 1 {
		fail(lineOr(m.versionLine, m.docLine), ErrBadDecl, "unsupported manifest version %d (this tool reads version 1)", m.Version)
	}
	if m.Requires != "" {
		if err := checkRequires(m.Requires); err != nil {
			fail(lineOr(m.requiresLine, m.docLine), ErrBadDecl, "%v", err)
		}
	}
	switch {
	case m.Package == "":
		fail(lineOr(m.packageLine, m.docLine), ErrBadDecl, "missing package name")
	case !packageRE.MatchString(m.Package):
		fail(lineOr(m.packageLine, m.docLine), ErrBadIdentifier, "package %q", m.Package)
	}
	if len(m.Kinds) == 0 {
		fail(m.docLine, ErrBadDecl, "manifest declares no kinds")
	}
	if len(m.Variants) == 0 {
		fail(m.docLine, ErrBadDecl, "manifest declares no variants")
	}

	kinds := make(map[string]bool, len(m.Kinds))
	for _, k := range m.Kinds {
		switch {
		case k.Name == "":
			fail(k.line, ErrBadDecl, "kind with no name")
		case !identRE.MatchString(k.Name):
			fail(k.line, ErrBadIdentifier, "kind %q", k.Name)
		case kinds[k.Name]:
			fail(k.line, xgxtaxon.ErrDuplicateKind, "kind %q", k.Name)
		default:
			kinds[k.Name] = true
		}
		if k.MessageID == "" {
			fail(k.line, ErrBadDecl, "kind %q has no message_id", k.Name)
		}
		if k.Code < 0 || k.Code > 65535 {
			fail(k.line, ErrBadDecl, "kind %q code %d outside 0..65535", k.Name, k.Code)
		}
		if k.Description == "" {
			fail(k.line, ErrBadDecl, "kind %q has no description", k.Name)
		}
		if k.Side != "" && !xgxtaxon.Side(k.Side).IsValid() {
			fail(k.line, ErrBadDecl, "kind %q side %q (want Client or Server)", k.Name, k.Side)
		}
	}

	variants := make(map[string]bool, len(m.Variants))
	for _, v := range m.Variants {
		switch {
		case v.Name == "":
			fail(v.line, ErrBadDecl, "variant with no name")
		case !identRE.MatchString(v.Name):
			fail(v.line, ErrBadIdentifier, "variant %q", v.Name)
		case reservedVariants[v.Name]:
			fail(v.line, ErrBadDecl, "variant name %q is reserved by the emitted file", v.Name)
		case variants[v.Name]:
			fail(v.line, ErrDuplicateVariant, "variant %q", v.Name)
		default:
			variants[v.Name] = true
		}
		switch {
		case v.Kind == "":
			fail(v.line, ErrUnknownKind, "variant %q names no kind", v.Name)
		case !kinds[v.Kind]:
			fail(v.line, ErrUnknownKind, "variant %q references kind %q", v.Name, v.Kind)
		}
	}

	return errors.Join(errs...)
}

// checkRequires gates the manifest on this tool's release.
func checkRequires(requires string) error {
	c, err := semver.NewConstraint(requires)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", requires, err)
	}
	if !c.Check(semver.MustParse(Version)) {
		return fmt.Errorf("manifest requires taxongen %q, this is %s", requires, Version)
	}
	return nil
}

func lineOr(line, fallback int) int {
	if line > 0 {
		return line
	}
	return fallback
}
