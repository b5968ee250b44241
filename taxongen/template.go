// template.go — the shape of the emitted variant file.
//
// The template writes gofmt-canonical text directly; go/format.Source in
// Generate is a safety net, not a crutch. Keep edits here byte-disciplined:
// the emitted artifact is committed and diffed by CI.
package taxongen

import (
	"text/template"

	xgxtaxon "github.com/xgx-io/xgx-taxon"
)

// fileData is the template input: manifest declarations massaged into
// emission form.
type fileData struct {
	Package  string
	Kinds    []fileKind
	Variants []fileVariant
}

type fileKind struct {
	Name        string
	MessageID   string
	Code        int
	Description string
	// SideConst is the xgxtaxon constant to emit; empty leaves the side
	// derived from the code at table construction.
	SideConst string
}

type fileVariant struct {
	Name string
	Kind string
	Doc  string
}

func buildFileData(m *Manifest) fileData {
	d := fileData{Package: m.Package}
	for _, k := range m.Kinds {
		fk := fileKind{
			Name:        k.Name,
			MessageID:   k.MessageID,
			Code:        k.Code,
			Description: k.Description,
		}
		switch xgxtaxon.Side(k.Side) {
		case xgxtaxon.SideClient:
			fk.SideConst = "xgxtaxon.SideClient"
		case xgxtaxon.SideServer:
			fk.SideConst = "xgxtaxon.SideServer"
		}
		d.Kinds = append(d.Kinds, fk)
	}
	for _, v := range m.Variants {
		d.Variants = append(d.Variants, fileVariant{Name: v.Name, Kind: v.Kind, Doc: v.Doc})
	}
	return d
}

var fileTmpl = template.Must(template.New("taxonomy").Parse(fileTemplate))

const fileTemplate = `// Code generated by taxongen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"

	xgxtaxon "github.com/xgx-io/xgx-taxon"
)

// Kinds is the frozen kind table for this taxonomy, built at package init so
// that a bad batch fails at process start, never at first use.
var Kinds = xgxtaxon.MustTable(
{{- range .Kinds}}
	xgxtaxon.KindDecl{Name: {{printf "%q" .Name}}, MessageID: {{printf "%q" .MessageID}}, Code: {{.Code}}, Description: {{printf "%q" .Description}}{{if .SideConst}}, Side: {{.SideConst}}{{end}}},
{{- end}}
)

{{range .Kinds -}}
var kind{{.Name}} = Kinds.MustKind({{printf "%q" .Name}})
{{end -}}
{{range .Variants}}
{{if .Doc}}// {{.Name}} {{.Doc}}{{else}}// {{.Name}} is a variant of the {{.Kind}} kind.{{end}}
type {{.Name}} struct {
	class   string
	message string
	details xgxtaxon.Map
}

// New{{.Name}} constructs the variant with its kind's default message.
func New{{.Name}}() {{.Name}} {
	return {{.Name}}{
		class:   kind{{.Kind}}.Class({{printf "%q" .Name}}),
		message: kind{{.Kind}}.Description(),
	}
}

// Convert{{.Name}} converts origin into this variant: the origin's own
// details move to the top level and the stripped origin is recorded under
// the reserved key.
func Convert{{.Name}}(origin xgxtaxon.Error) {{.Name}} {
	v := New{{.Name}}()
	v.details = xgxtaxon.ConvertDetails(origin)
	return v
}

// Kind returns the kind record shared by all values of this variant.
func (e {{.Name}}) Kind() xgxtaxon.Kind { return kind{{.Kind}} }

// Class returns the full class path.
func (e {{.Name}}) Class() string { return e.class }

// Message returns the current display message.
func (e {{.Name}}) Message() string { return e.message }

// Details reports the structured details and whether any are present.
func (e {{.Name}}) Details() (xgxtaxon.Map, bool) {
	if e.details == nil {
		return nil, false
	}
	return e.details.Clone(), true
}

// SetMessage returns a copy with the message replaced.
func (e {{.Name}}) SetMessage(message string) {{.Name}} {
	e.message = message
	return e
}

// SetDetails returns a copy with the details replaced wholesale.
func (e {{.Name}}) SetDetails(details xgxtaxon.Map) {{.Name}} {
	e.details = details.Clone()
	return e
}

// Snapshot erases the variant into a cloneable snapshot.
func (e {{.Name}}) Snapshot() xgxtaxon.Error { return xgxtaxon.Capture(e) }

func (e {{.Name}}) Error() string { return kind{{.Kind}}.Render({{printf "%q" .Name}}, e.message) }

func (e {{.Name}}) Format(s fmt.State, verb rune) { xgxtaxon.FormatState(s, verb, e) }

var _ xgxtaxon.AsError = {{.Name}}{}
{{end -}}
`
