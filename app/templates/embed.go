// Package templates bundles the HTML views into the binary.
package templates

import "embed"

//go:embed *.html layouts/*.html landing/*.html dashboard/*.html
var FS embed.FS
