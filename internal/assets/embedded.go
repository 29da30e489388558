package assets

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tex
var embedded embed.FS

// builtin serves the embedded templates directory.
var builtin = mustSub(embedded, "templates")

func mustSub(fsys fs.FS, dir string) fsSource {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err) // the embed pattern guarantees dir exists
	}
	return fsSource{fsys: sub}
}

// Embedded returns the templates compiled into the binary.
func Embedded() Source {
	return builtin
}

// TemplateNames lists the embedded template names, sorted.
func TemplateNames() []string {
	return builtin.names()
}

// LoadTemplate loads an embedded template by name.
func LoadTemplate(name string) (string, error) {
	return builtin.Template(name)
}
