package renderer

import "embed"

//go:embed *.md
var templates embed.FS
