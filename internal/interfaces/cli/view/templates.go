package view

import "text/template"

// Card template names.
const (
	TemplateCatalog = "card-catalog"
	TemplatePreview = "card-preview"
	TemplateBasket  = "card-basket"
)

var templates = template.Must(template.New("cards").Funcs(template.FuncMap{
	"pad": padRight,
}).Parse(`
{{- define "card-catalog" -}}
{{ pad .Category 16 }} {{ pad .Title 36 }} {{ .PriceText }}
{{- end -}}

{{- define "card-preview" -}}
{{ .Title }}
{{ .Category }}
{{- if .Image }}
image: {{ .Image }}
{{- end }}
{{- if .Description }}

{{ .Description }}
{{- end }}

{{ .PriceText }}
[ {{ .ButtonTitle }} ]{{ if .Disabled }} unavailable{{ else }} type "toggle"{{ end }}
{{- end -}}

{{- define "card-basket" -}}
{{ .Index }}. {{ pad .Title 36 }} {{ .PriceText }}
{{- end -}}
`))
