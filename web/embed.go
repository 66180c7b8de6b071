package web

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var templateFS embed.FS

//go:embed all:static
var staticFS embed.FS

// TemplateFS holds the dashboard layouts and pages under templates/.
var TemplateFS fs.FS = templateFS

// StaticFS holds the stylesheet and default avatar, rooted so that its
// paths match the URL path after /static/.
var StaticFS fs.FS = mustSub(staticFS, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
