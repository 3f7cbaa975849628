package golang

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/ensembledata/ensembledata-go/pkg/config"
	"github.com/ensembledata/ensembledata-go/pkg/ir"
	"github.com/ensembledata/ensembledata-go/pkg/utils"
)

//go:embed templates/*
var templatesFS embed.FS

// GoGenerator renders one file of endpoint methods per tag.
type GoGenerator struct{}

// NewGoGenerator creates a new Go generator
func NewGoGenerator() *GoGenerator {
	return &GoGenerator{}
}

// Generate writes <tag>.go for every group of in into client.OutDir.
func (g *GoGenerator) Generate(client config.Client, in ir.IR) ([]string, error) {
	if err := os.MkdirAll(client.OutDir, 0o755); err != nil {
		return nil, err
	}

	tmpl, err := parseTemplate("service.go.gotmpl", funcMap(client))
	if err != nil {
		return nil, err
	}

	var written []string
	for _, group := range in.Groups {
		if len(group.Endpoints) == 0 {
			continue
		}
		target := filepath.Join(client.OutDir, utils.FileName(group.Tag)+".go")
		if client.ShouldExcludeFile(target) {
			continue
		}
		src, err := Render(tmpl, map[string]any{"Client": client, "Group": group})
		if err != nil {
			return written, fmt.Errorf("group %s: %w", group.Tag, err)
		}
		if err := os.WriteFile(target, src, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}

func funcMap(client config.Client) template.FuncMap {
	fm := sprig.TxtFuncMap()
	local := template.FuncMap{
		"packageName":  func() string { return sanitizePackageName(client.PackageName) },
		"paramsImport": func() string { return client.ParamsImport },
		"goType":       goType,
		"fieldName":    fieldName,
		"argValue":     argValue,
		"paramsType":   paramsTypeName,
		"enumDoc":      enumDoc,
	}
	for k, v := range local {
		fm[k] = v
	}
	return fm
}

func parseTemplate(name string, fm template.FuncMap) (*template.Template, error) {
	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Funcs(fm).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// Render executes tmpl and gofmt-s the result.
func Render(tmpl *template.Template, data map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code for %s does not parse: %w", tmpl.Name(), err)
	}
	return src, nil
}
