// Package templates renders assembled type descriptions into the persisted
// artifact layout. Rendering is deterministic: the same GeneratedType always
// produces byte-identical output.
package templates

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/hikaridb/proxygen/internal/models"
	"github.com/hikaridb/proxygen/internal/utils"
)

// Header marks every persisted artifact as machine-written
const Header = "// Code generated by proxygen. DO NOT EDIT."

const classTemplate = `{{header}}
package {{.Package}};

{{classDecl .}} {
{{- range .Methods}}
    {{method .}}
{{- end}}
}
`

// ClassRenderer renders GeneratedType values into artifact text
type ClassRenderer struct {
	tmpl *template.Template
}

// NewClassRenderer creates a renderer with the standard class layout
func NewClassRenderer() *ClassRenderer {
	funcs := template.FuncMap{
		"header":    func() string { return Header },
		"classDecl": renderClassDecl,
		"method":    renderMethod,
	}
	return &ClassRenderer{
		tmpl: template.Must(template.New("class").Funcs(funcs).Parse(classTemplate)),
	}
}

// Render produces the full artifact text for a generated type
func (r *ClassRenderer) Render(gen *models.GeneratedType) (string, error) {
	var out strings.Builder
	if err := r.tmpl.Execute(&out, gen); err != nil {
		return "", utils.WrapRenderError(gen.Name, err)
	}
	return out.String(), nil
}

// renderClassDecl renders the class declaration line up to the opening brace
func renderClassDecl(gen *models.GeneratedType) string {
	var decl strings.Builder

	if mods := gen.Modifiers.String(); mods != "" {
		decl.WriteString(mods)
		decl.WriteString(" ")
	}
	decl.WriteString("class ")
	decl.WriteString(gen.SimpleName())

	if gen.Superclass != "" {
		decl.WriteString(" extends ")
		decl.WriteString(gen.Superclass)
	}
	if len(gen.Interfaces) > 0 {
		decl.WriteString(" implements ")
		decl.WriteString(strings.Join(gen.Interfaces, ", "))
	}

	return decl.String()
}

// renderMethod renders one method: a declaration with its synthesized body, or
// a bodiless declaration when no body was attached
func renderMethod(m models.GeneratedMethod) string {
	var decl strings.Builder

	if mods := m.Modifiers.String(); mods != "" {
		decl.WriteString(mods)
		decl.WriteString(" ")
	}
	decl.WriteString(m.ReturnType)
	decl.WriteString(" ")
	decl.WriteString(m.Name)
	decl.WriteString("(")
	for i, p := range m.Parameters {
		if i > 0 {
			decl.WriteString(", ")
		}
		decl.WriteString(p.Type)
		if p.Name != "" {
			decl.WriteString(" ")
			decl.WriteString(p.Name)
		}
	}
	decl.WriteString(")")

	if len(m.Throws) > 0 {
		decl.WriteString(" throws ")
		decl.WriteString(strings.Join(m.Throws, ", "))
	}

	if m.Body == "" {
		decl.WriteString(";")
	} else {
		decl.WriteString(fmt.Sprintf(" %s", m.Body))
	}

	return decl.String()
}
