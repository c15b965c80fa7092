package info

import (
	_ "embed"
	"html/template"
)

// UIType selects the documentation UI.
type UIType string

// Supported documentation UIs.
const (
	UISwaggerUI UIType = "swaggerui"
	UIRedoc     UIType = "redoc"
)

var (
	//go:embed assets/swaggerui.html
	swaggerUIHTML string
	//go:embed assets/redoc.html
	redocHTML string
)

var (
	templateSwaggerUI = template.Must(template.New("openapi-swaggerui").Parse(swaggerUIHTML))
	templateRedoc     = template.Must(template.New("openapi-redoc").Parse(redocHTML))
)

func templateFor(uiType UIType) *template.Template {
	if uiType == UIRedoc {
		return templateRedoc
	}
	return templateSwaggerUI
}
