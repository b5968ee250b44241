// Package taxongen turns a YAML taxonomy manifest into a Go source file of
// error-variant types backed by the xgx-taxon runtime.
//
// The pipeline has three stages, each usable on its own:
//
//	Load/Parse — read the manifest, strict about unknown fields, keeping the
//	             source line of every declaration for diagnostics;
//	Validate   — apply every declaration rule and report ALL violations,
//	             each matchable against an exported sentinel;
//	Generate   — render the variant file and gofmt it; WriteFile and Check
//	             wrap it for tooling and CI.
package taxongen

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the taxongen release. Manifests may pin a minimum through their
// `requires` constraint.
const Version = "0.1.0"

// Manifest is the parsed form of a taxonomy YAML file.
type Manifest struct {
	Version  int          `yaml:"version"`
	Requires string       `yaml:"requires"`
	Package  string       `yaml:"package"`
	Kinds    []KindDef    `yaml:"kinds"`
	Variants []VariantDef `yaml:"variants"`

	// Diagnostic positions; zero when the field was absent.
	path         string
	docLine      int
	versionLine  int
	requiresLine int
	packageLine  int
}

// Path returns the file the manifest was loaded from, or "" when it was
// parsed from memory.
func (m *Manifest) Path() string { return m.path }

// KindDef declares one error kind.
type KindDef struct {
	Name        string `yaml:"name"`
	MessageID   string `yaml:"message_id"`
	Code        int    `yaml:"code"`
	Description string `yaml:"description"`
	Side        string `yaml:"side"`

	line int
}

// Line returns the manifest line the kind was declared on.
func (d KindDef) Line() int { return d.line }

// VariantDef declares one variant type bound to a kind.
type VariantDef struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Doc  string `yaml:"doc"`

	line int
}

// Line returns the manifest line the variant was declared on.
func (d VariantDef) Line() int { return d.line }

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.path = path
	return m, nil
}

// Parse decodes manifest bytes. Unknown fields are rejected at every level so
// a typo fails loudly instead of silently dropping a declaration.
func Parse(data []byte) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("parse manifest: empty document")
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func (m *Manifest) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "manifest", "version", "requires", "package", "kinds", "variants"); err != nil {
		return err
	}
	type plain Manifest
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*m = Manifest(p)
	m.docLine = node.Line
	for i := 0; i < len(node.Content)-1; i += 2 {
		key := node.Content[i]
		switch key.Value {
		case "version":
			m.versionLine = key.Line
		case "requires":
			m.requiresLine = key.Line
		case "package":
			m.packageLine = key.Line
		}
	}
	return nil
}

func (d *KindDef) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "kind entry", "name", "message_id", "code", "description", "side"); err != nil {
		return err
	}
	type plain KindDef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = KindDef(p)
	d.line = node.Line
	return nil
}

func (d *VariantDef) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "variant entry", "name", "kind", "doc"); err != nil {
		return err
	}
	type plain VariantDef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = VariantDef(p)
	d.line = node.Line
	return nil
}

// checkFields rejects mapping keys outside the allowed set, pointing at the
// offending key's line.
func checkFields(node *yaml.Node, what string, allowed ...string) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping", node.Line, what)
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		key := node.Content[i]
		known := false
		for _, a := range allowed {
			if key.Value == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("line %d: unknown field %q in %s", key.Line, key.Value, what)
		}
	}
	return nil
}
