package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

func Funcs() template.FuncMap {
	return template.FuncMap{
		// 0.8234 -> "82.34%"
		"percent": func(p float64) string {
			return fmt.Sprintf("%.2f%%", p*100)
		},
		"fieldClass": func(errs map[string][]string, field string) string {
			if len(errs[field]) > 0 {
				return "form-control border-red-500"
			}
			return "form-control"
		},
	}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}
