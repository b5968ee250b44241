// Package taxonomytest hosts a small generated taxonomy that keeps the
// generator honest end to end: the manifest, the committed artifact, and
// conformance tests pinning the behavior of generated variants.
//
// Regenerate with:
//
//	go generate ./internal/taxonomytest
package taxonomytest

//go:generate go run github.com/xgx-io/xgx-taxon/cmd/taxongen generate -f taxonomy.yaml -o taxonomy_gen.go
