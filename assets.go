package md2tex

import "github.com/alnah/go-md2tex/internal/assets"

// TemplateNames lists the embedded document templates.
func TemplateNames() []string {
	return assets.TemplateNames()
}
