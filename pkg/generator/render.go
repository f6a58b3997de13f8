package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/clientgen/go-sdk/pkg/codemodel"
)

// fileModel is the template input for one generated source file.
type fileModel struct {
	Header      string
	Package     string
	ServiceName string
	Version     string
	InputHash   string
	Decls       []declModel
}

type declModel struct {
	Name    string
	Doc     string
	Fields  []fieldModel
	Methods []methodModel
}

type fieldModel struct {
	Name string
	Type string
	Tag  string
	Doc  string
}

type methodModel struct {
	Name string
	ID   string
}

const fileTemplateText = `// Code generated from the {{.ServiceName}} {{.Version}} service description. DO NOT EDIT.
// Input: {{.InputHash}}
{{- if .Header}}
// {{.Header}}
{{- end}}

package {{.Package}}
{{range .Decls}}
{{- if .Doc}}
// {{.Name}} {{.Doc}}
{{- else}}
// {{.Name}} is generated from the service description.
{{- end}}
type {{.Name}} struct {
{{- range .Fields}}
{{- if .Doc}}
	// {{.Name}}: {{.Doc}}
{{- end}}
	{{.Name}} {{.Type}} ` + "`json:\"{{.Tag}},omitempty\"`" + `
{{- end}}
}
{{- if .Methods}}

// MethodIDs lists the wire identifiers of the {{.Name}} methods.
func ({{.Name}}) MethodIDs() []string {
	return []string{
{{- range .Methods}}
		"{{.ID}}",
{{- end}}
	}
}
{{- end}}
{{end}}`

var fileTemplate = template.Must(template.New("file").Parse(fileTemplateText))

// render executes the file template and gofmt-formats the result, so a
// malformed declaration fails the run instead of producing unreadable
// output.
func render(model fileModel) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", model.ServiceName, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source for %s: %w", model.ServiceName, err)
	}
	return src, nil
}

// viewOf projects a declaration into its template shape. Field tags and
// method identifiers come from the annotations the model builder attached.
func viewOf(decl *codemodel.TypeDecl) declModel {
	dm := declModel{Name: decl.Name, Doc: decl.Doc}
	for _, m := range decl.Members {
		switch m.Kind {
		case codemodel.KindField:
			tag := m.Name
			if wt, ok := codemodel.AnnotationOf[wireTag](m); ok {
				tag = wt.Name
			}
			dm.Fields = append(dm.Fields, fieldModel{Name: m.Name, Type: m.Type, Tag: tag, Doc: m.Doc})
		case codemodel.KindMethod:
			id := m.Name
			if mid, ok := codemodel.AnnotationOf[methodID](m); ok {
				id = mid.ID
			}
			dm.Methods = append(dm.Methods, methodModel{Name: m.Name, ID: id})
		}
	}
	return dm
}

func viewsOf(decls []*codemodel.TypeDecl) []declModel {
	out := make([]declModel, 0, len(decls))
	for _, decl := range decls {
		out = append(out, viewOf(decl))
	}
	return out
}
