// Package codegen renders the typed store accessor file emitted by
// "tide gen".
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"github.com/go-drift/tide/cmd/tide/internal/config"
)

const fileTemplate = `// Code generated by tide gen; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/go-drift/tide/pkg/registry"
	"github.com/go-drift/tide/pkg/store"
{{- if .Imports}}
{{range .Imports}}	{{printf "%q" .}}
{{end -}}
{{- end -}}
)

{{range .Stores -}}
// {{.Accessor}} returns the {{printf "%q" .Name}} store from the default
// registry. The second result is false until the store is registered.
func {{.Accessor}}() (*store.Store[{{.State}}], bool) {
	return registry.StoreOf[{{.State}}](registry.Default, {{printf "%q" .Name}})
}

{{end -}}
`

type storeModel struct {
	Name     string
	State    string
	Accessor string
}

type fileModel struct {
	Package string
	Imports []string
	Stores  []storeModel
}

var tmpl = template.Must(template.New("accessors").Parse(fileTemplate))

// Generate renders and formats the accessor file for the resolved
// configuration.
func Generate(resolved *config.Resolved) ([]byte, error) {
	model := fileModel{Package: resolved.Package}

	importSet := make(map[string]bool)
	for _, sc := range resolved.Stores {
		if sc.Import != "" {
			importSet[sc.Import] = true
		}
		model.Stores = append(model.Stores, storeModel{
			Name:     sc.Name,
			State:    sc.State,
			Accessor: Accessor(sc.Name),
		})
	}
	for path := range importSet {
		model.Imports = append(model.Imports, path)
	}
	sort.Strings(model.Imports)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("failed to render accessors: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not compile: %w", err)
	}
	return src, nil
}

// Accessor converts a store name like "user_prefs" to the accessor
// name "UserPrefsStore".
func Accessor(name string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	}) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	b.WriteString("Store")
	return b.String()
}
