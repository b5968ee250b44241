// generate.go — rendering, disk I/O, and the freshness check.
package taxongen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
)

const filePerm = 0o644

// Generate renders m into a gofmt-formatted Go source file. The manifest is
// validated first; one that fails validation never reaches emission.
//
// Output is deterministic: the same manifest yields the same bytes on every
// run, so the artifact can be committed and diffed.
func Generate(m *Manifest) ([]byte, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, buildFileData(m)); err != nil {
		return nil, fmt.Errorf("render taxonomy: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// DefaultOutput is the artifact name generate derives when the caller gives
// no output path: "<package>_gen.go" alongside the manifest.
func DefaultOutput(m *Manifest) string {
	return m.Package + "_gen.go"
}

// WriteFile generates the artifact for m and writes it to path.
func WriteFile(m *Manifest, path string) error {
	src, err := Generate(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Check reports whether the artifact at path is byte-identical to what m
// generates today. A missing artifact reads as stale, not as an error.
func Check(m *Manifest, path string) (bool, error) {
	src, err := Generate(m)
	if err != nil {
		return false, err
	}
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	return bytes.Equal(existing, src), nil
}
