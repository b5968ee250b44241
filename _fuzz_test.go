package xgxtaxon

import (
	"strings"
	"testing"
)

func FuzzSplitClass(f *testing.F) {
	f.Add("Server::IoError::NotFoundError")
	f.Add("Client::ValidationError::FieldError")
	f.Add("noseparators")
	f.Add("::")
	f.Add("A::B::C::D")

	f.Fuzz(func(t *testing.T, class string) {
		side, kind, variant, ok := splitClass(class)
		if !ok {
			return
		}
		if side == "" || kind == "" || variant == "" {
			t.Fatalf("splitClass(%q) reported ok with an empty segment", class)
		}
		if !strings.HasPrefix(class, side+"::"+kind+"::") {
			t.Fatalf("splitClass(%q) = %q %q %q, segments do not reassemble", class, side, kind, variant)
		}
	})
}

func FuzzTableDecode(f *testing.F) {
	f.Add([]byte(`{"class":"Server::IoError::NotFoundError","message":"gone","details":null}`))
	f.Add([]byte(`{"class":"","message":""}`))
	f.Add([]byte(`not json`))
	f.Add([]byte(`{"class":42}`))

	tbl := MustTable(testDecls()...)
	f.Fuzz(func(t *testing.T, data []byte) {
		e, err := tbl.Decode(data)
		if err != nil {
			return
		}
		snap, err := e.MarshalJSON()
		if err != nil {
			t.Fatalf("decoded snapshot failed to marshal: %v", err)
		}
		again, err := tbl.Decode(snap)
		if err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
		if !again.Equal(e) {
			t.Fatalf("decode/marshal/decode drifted:\n first %+v\nsecond %+v", e, again)
		}
	})
}
