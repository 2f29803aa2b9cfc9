// Package schemas holds the embedded JSON Schema documents shipped with the
// binary.
package schemas

import _ "embed"

// ManifestSchemaJSON is the JSON Schema for shipcheck.yaml manifest files.
//
//go:embed manifest.schema.json
var ManifestSchemaJSON string
