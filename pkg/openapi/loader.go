package openapi

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// SiblingFields are the non "x-" schema keywords the EnsembleData document
// uses to drive code generation.
var SiblingFields = []string{"rename", "retype"}

// Document is a loaded OpenAPI document together with the order in which its
// paths are declared.
type Document struct {
	*openapi3.T

	pathOrder []string
}

// OrderedPaths returns every path of the document, in declaration order.
// Paths whose position is unknown follow in lexical order.
func (d *Document) OrderedPaths() []string {
	if d.Paths == nil {
		return nil
	}
	seen := make(map[string]bool, d.Paths.Len())
	out := make([]string, 0, d.Paths.Len())
	for _, p := range d.pathOrder {
		if d.Paths.Value(p) != nil && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	var rest []string
	for p := range d.Paths.Map() {
		if !seen[p] {
			rest = append(rest, p)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func newLoader(ctx context.Context) *openapi3.Loader {
	return &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
}

// LoadDocument loads an OpenAPI document from a local file path or an HTTP(S) URL
func LoadDocument(ctx context.Context, input string) (*Document, error) {
	return LoadDocumentWithLoader(newLoader(ctx), input)
}

// LoadDocumentWithLoader loads an OpenAPI document using a custom loader
func LoadDocumentWithLoader(loader *openapi3.Loader, input string) (*Document, error) {
	location, err := resolveLocation(input)
	if err != nil {
		return nil, err
	}
	read := loader.ReadFromURIFunc
	if read == nil {
		read = openapi3.DefaultReadFromURI
	}
	data, err := read(loader, location)
	if err != nil {
		return nil, fmt.Errorf("read openapi document %q: %w", input, err)
	}
	doc, err := loader.LoadFromDataWithPath(data, location)
	if err != nil {
		return nil, fmt.Errorf("parse openapi document %q: %w", input, err)
	}
	return &Document{T: doc, pathOrder: pathOrder(data)}, nil
}

// resolveLocation turns input into the URL the loader reads from. Local paths
// become absolute so relative $refs resolve next to the document.
func resolveLocation(input string) (*url.URL, error) {
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return u, nil
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		return nil, err
	}
	return &url.URL{Path: filepath.ToSlash(abs)}, nil
}

// pathOrder lists the keys of the top-level "paths" mapping as written.
// JSON documents parse as YAML, so one walk serves both formats.
func pathOrder(data []byte) []string {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil || len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "paths" {
			continue
		}
		paths := doc.Content[i+1]
		out := make([]string, 0, len(paths.Content)/2)
		for j := 0; j+1 < len(paths.Content); j += 2 {
			out = append(out, paths.Content[j].Value)
		}
		return out
	}
	return nil
}

// ValidateDocument validates an OpenAPI document. The rename and retype
// schema keywords are accepted.
func ValidateDocument(ctx context.Context, input string) error {
	loader := newLoader(ctx)
	doc, err := LoadDocumentWithLoader(loader, input)
	if err != nil {
		return err
	}
	return doc.Validate(loader.Context, openapi3.AllowExtraSiblingFields(SiblingFields...))
}
