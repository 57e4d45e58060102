package db

import _ "embed"

// Schema é o documento SQL aplicado por cmd/apply_schema.
//
//go:embed schema.sql
var Schema string
