// Package configs holds data files compiled into the binaries.
package configs

import _ "embed"

// PagesYAML lists the static pages the index builder reads besides blog posts.
//
//go:embed pages.yaml
var PagesYAML []byte

// SearchIndexSchema is the JSON Schema every written search index must satisfy.
//
//go:embed search-index.schema.json
var SearchIndexSchema []byte
