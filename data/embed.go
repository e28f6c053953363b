// Package data holds the static assets compiled into the binary.
package data

import "embed"

//go:embed templates
var Templates embed.FS
