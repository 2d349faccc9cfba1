// Package schemas holds the JSON Schema documents for joblens payloads and
// catalog tables. The files are embedded so validation does not depend on the
// working directory.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
