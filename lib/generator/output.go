package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// exprPrefix wraps a bare expression so go/format accepts it.
const exprPrefix = "package p\n\nvar _ = "

type funcInfo struct {
	Name   string
	Params string
	Result string
	Expr   string
}

type fileInfo struct {
	Package string
	Imports []string
	Funcs   []funcInfo
}

var templateFuncs = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

// exprTemplate builds elements in locals named _hxattrs and _hxel, which
// attribute values cannot refer to: punned keys and block statements use
// their own names.
var exprTemplate = template.Must(template.New("expr").Funcs(templateFuncs).Parse(`
{{- if .Custom -}}
func() {{.Tag}} {
	var _hxel {{.Tag}}
	{{- template "attrs" .Attrs}}
	{{- if .Content}}
	_hxel.Children = {{.Content}}
	{{- end}}
	return _hxel
}()
{{- else -}}
func() *{{.Pkg}}.Element {
	_hxattrs := make({{.Pkg}}.Attributes, {{len .Attrs}})
	{{- template "attrs" .Attrs}}
	return {{.Pkg}}.NewElement({{quote .Tag}}, _hxattrs, {{if .Content}}{{.Content}}{{else}}nil{{end}})
}()
{{- end -}}

{{- define "attrs"}}
	{{- range .}}
	{{- if .Prelude}}
	{
		{{- range .Prelude}}
		{{.}}
		{{- end}}
		{{.Assign}}
	}
	{{- else}}
	{{.Assign}}
	{{- end}}
	{{- end}}
{{- end}}`))

var fileTemplate = template.Must(template.New("file").Funcs(templateFuncs).Parse(`// Code generated by hxattr. DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{quote .}}
{{- end}}
)
{{end}}
{{- range .Funcs}}
func {{.Name}}({{.Params}}) {{.Result}} {
	return {{.Expr}}
}
{{end}}`))

func renderTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatSource(code []byte) ([]byte, error) {
	formatted, err := format.Source(code)
	if err != nil {
		return nil, fmt.Errorf("format source: %w\n%s", err, code)
	}
	return formatted, nil
}

// formatExpr gofmts an expression by formatting it as a variable initializer
// and cutting the wrapper off again.
func formatExpr(code []byte) ([]byte, error) {
	formatted, err := formatSource(append([]byte(exprPrefix), code...))
	if err != nil {
		return nil, err
	}
	out := strings.TrimPrefix(string(formatted), exprPrefix)
	return []byte(strings.TrimSpace(out)), nil
}
