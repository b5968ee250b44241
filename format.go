// format.go — fmt.Formatter support for taxonomy errors.
//
// Behavior:
//
//   %s, %v   → concise one-line rendering (Error()).
//   %+v      → verbose, structured multi-line format:
//                class=<class> code=<code> msg_id=<id> msg="<message>"
//                details: key1=val1 key2=val2 ...
//                origin: <recursively formatted with %+v>
//   %q       → quoted Error().
//
// Rationale:
//   - Keep core free of logging/HTTP/JSON policy; only fmt formatting.
//   - Deterministic details order comes from the sorted Map.
//   - Generated variants get identical behavior by delegating their Format
//     method to FormatState.
package xgxtaxon

import (
	"fmt"
	"io"
)

// FormatState implements the shared fmt.Formatter behavior for any taxonomy
// error. Variant types delegate their Format method to it:
//
//	func (e NotFoundError) Format(s fmt.State, verb rune) {
//		xgxtaxon.FormatState(s, verb, e)
//	}
func FormatState(s fmt.State, verb rune, e AsError) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes a structured multi-line representation. The origin,
// when recorded, is pulled out of the details and formatted on its own line
// with %+v so nested records render verbosely too.
func formatVerbose(w io.Writer, e AsError) {
	_, _ = fmt.Fprintf(w, "class=%s", e.Class())
	if k := e.Kind(); !k.IsZero() {
		_, _ = fmt.Fprintf(w, " code=%d msg_id=%s", k.Code(), k.MessageID())
	}
	_, _ = fmt.Fprintf(w, " msg=%q", e.Message())

	snapshot := Capture(e)
	wroteHeader := false
	for _, entry := range snapshot.details {
		if entry.Key == OriginKey || entry.Key == "" {
			continue
		}
		if !wroteHeader {
			_, _ = io.WriteString(w, "\ndetails:")
			wroteHeader = true
		}
		_, _ = fmt.Fprintf(w, " %s=%v", entry.Key, entry.Value)
	}

	if origin, ok := snapshot.Origin(); ok {
		_, _ = io.WriteString(w, "\norigin: ")
		_, _ = fmt.Fprintf(w, "%+v", origin)
	}
}

// Format implements fmt.Formatter for the erased snapshot.
func (e Error) Format(s fmt.State, verb rune) { FormatState(s, verb, e) }
