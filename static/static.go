// Package static embeds the API documentation assets served under /docs
// and /static.
package static

import "embed"

const (
	UIFile   = "openapi.html"
	SpecFile = "openapi.json"
)

//go:embed openapi.html openapi.json
var Files embed.FS
