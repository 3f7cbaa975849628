package generator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ensembledata/ensembledata-go/pkg/config"
	"github.com/ensembledata/ensembledata-go/pkg/ir"
	"github.com/ensembledata/ensembledata-go/pkg/openapi"
	"github.com/ensembledata/ensembledata-go/pkg/requester"
	"github.com/ensembledata/ensembledata-go/pkg/utils"
)

// Schema keywords read from parameter schemas.
const (
	renameKeyword = "rename"
	retypeKeyword = "retype"
	retypeToList  = "semicolon-separated-string-to-list"
)

// buildIR creates the IR of every GET operation of doc, grouped by first tag
// in declaration order.
func buildIR(doc *openapi.Document, client config.Client) (ir.IR, error) {
	var order []string
	groups := map[string]*ir.Group{}

	for _, path := range doc.OrderedPaths() {
		item := doc.Paths.Value(path)
		if item == nil || item.Get == nil {
			continue
		}
		ep, err := buildEndpoint(doc, client, path, item.Get)
		if err != nil {
			return ir.IR{}, err
		}
		g, ok := groups[ep.Tag]
		if !ok {
			g = &ir.Group{Tag: ep.Tag, Name: groupName(client, ep.Tag)}
			groups[ep.Tag] = g
			order = append(order, ep.Tag)
		}
		g.Endpoints = append(g.Endpoints, ep)
	}

	out := ir.IR{Groups: make([]ir.Group, 0, len(order))}
	for _, tag := range order {
		out.Groups = append(out.Groups, *groups[tag])
	}
	return out, nil
}

func buildEndpoint(doc *openapi.Document, client config.Client, path string, op *openapi3.Operation) (ir.Endpoint, error) {
	if op.OperationID == "" {
		return ir.Endpoint{}, fmt.Errorf("GET %s: operationId is required", path)
	}
	tags := make([]string, len(op.Tags))
	copy(tags, op.Tags)
	if len(tags) == 0 {
		tags = []string{"misc"}
	}

	ep := ir.Endpoint{
		OperationID:        op.OperationID,
		FunctionName:       functionName(op.OperationID),
		Path:               path,
		Tag:                tags[0],
		OriginalTags:       tags,
		Summary:            op.Summary,
		Deprecated:         op.Deprecated,
		ReturnTopLevelData: client.IsTopLevelData(op.OperationID),
	}
	if ep.FunctionName == "" {
		return ir.Endpoint{}, fmt.Errorf("GET %s: cannot derive a method name from operationId %q", path, op.OperationID)
	}

	for _, pr := range op.Parameters {
		if pr == nil || pr.Value == nil {
			continue
		}
		p := pr.Value
		if p.In != openapi3.ParameterInQuery || p.Name == requester.TokenParam {
			continue
		}
		param, err := buildParam(doc, p)
		if err != nil {
			return ir.Endpoint{}, fmt.Errorf("GET %s: %w", path, err)
		}
		ep.Params = append(ep.Params, param)
	}
	return ep, nil
}

// functionName drops the group prefix of an operationId:
// tiktok_user_posts_from_secuid -> UserPostsFromSecuid.
func functionName(operationID string) string {
	parts := strings.Split(operationID, "_")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return utils.GoName(strings.Join(parts, "_"))
}

func groupName(client config.Client, tag string) string {
	if name := client.GroupName(tag); name != "" {
		return name
	}
	return utils.GoName(tag)
}

func buildParam(doc *openapi.Document, p *openapi3.Parameter) (ir.Param, error) {
	if p.Schema == nil || p.Schema.Value == nil {
		return ir.Param{}, fmt.Errorf("parameter %q has no schema", p.Name)
	}
	s := p.Schema.Value

	logical := p.Name
	if rename := stringExtension(s, renameKeyword); rename != "" {
		logical = rename
	}
	param := ir.Param{
		Name:        utils.CamelCase(logical),
		Wire:        p.Name,
		Required:    p.Required,
		Description: p.Description,
	}

	switch {
	case s.Type != nil && len(*s.Type) > 0:
		kind, err := scalarKind(s.Type)
		if err != nil {
			return ir.Param{}, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		param.Kind = kind
		if stringExtension(s, retypeKeyword) == retypeToList {
			param.Kind = ir.KindList
			param.Transform = ir.TransformJoinSemicolon
		}
	case len(s.AllOf) > 0:
		values, err := enumValues(doc, s.AllOf[0])
		if err != nil {
			return ir.Param{}, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		param.Kind = ir.KindEnum
		param.Enum = values
	default:
		return ir.Param{}, fmt.Errorf("unknown param type for %q", p.Name)
	}
	return param, nil
}

func scalarKind(t *openapi3.Types) (ir.Kind, error) {
	switch {
	case t.Is(openapi3.TypeString):
		return ir.KindString, nil
	case t.Is(openapi3.TypeInteger):
		return ir.KindInteger, nil
	case t.Is(openapi3.TypeBoolean):
		return ir.KindBoolean, nil
	default:
		return "", fmt.Errorf("unknown type: %s", strings.Join(t.Slice(), ","))
	}
}

// enumValues returns the literals of the enum component ref points at.
func enumValues(doc *openapi.Document, ref *openapi3.SchemaRef) ([]string, error) {
	if ref == nil {
		return nil, fmt.Errorf("empty allOf")
	}
	target := ref.Value
	if target == nil && ref.Ref != "" && doc.Components != nil {
		name := ref.Ref[strings.LastIndex(ref.Ref, "/")+1:]
		if sr := doc.Components.Schemas[name]; sr != nil {
			target = sr.Value
		}
	}
	if target == nil || len(target.Enum) == 0 {
		return nil, fmt.Errorf("allOf[0] %q is not an enum", ref.Ref)
	}
	out := make([]string, 0, len(target.Enum))
	for _, v := range target.Enum {
		out = append(out, enumLiteral(v))
	}
	return out, nil
}

func enumLiteral(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// stringExtension reads a non "x-" keyword kin-openapi keeps in Extensions.
func stringExtension(s *openapi3.Schema, key string) string {
	v, ok := s.Extensions[key]
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// filterIR keeps the endpoints whose original tags pass the client's filters
func filterIR(full ir.IR, client config.Client) (ir.IR, error) {
	include, exclude, err := compileTagFilters(client.IncludeTags, client.ExcludeTags)
	if err != nil {
		return ir.IR{}, err
	}

	out := ir.IR{Groups: make([]ir.Group, 0, len(full.Groups))}
	for _, g := range full.Groups {
		kept := make([]ir.Endpoint, 0, len(g.Endpoints))
		for _, ep := range g.Endpoints {
			if shouldIncludeOperation(ep.OriginalTags, include, exclude) {
				kept = append(kept, ep)
			}
		}
		if len(kept) > 0 {
			g.Endpoints = kept
			out.Groups = append(out.Groups, g)
		}
	}
	return out, nil
}

// compileTagFilters compiles regex patterns for tag filtering
func compileTagFilters(include, exclude []string) ([]*regexp.Regexp, []*regexp.Regexp, error) {
	inc := make([]*regexp.Regexp, 0, len(include))
	for _, p := range include {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid includeTags pattern %q: %w", p, err)
		}
		inc = append(inc, r)
	}
	exc := make([]*regexp.Regexp, 0, len(exclude))
	for _, p := range exclude {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid excludeTags pattern %q: %w", p, err)
		}
		exc = append(exc, r)
	}
	return inc, exc, nil
}

// shouldIncludeOperation is true when any tag matches an include pattern (or
// there are none) and no tag matches an exclude pattern.
func shouldIncludeOperation(originalTags []string, include, exclude []*regexp.Regexp) bool {
	if len(include) > 0 && !anyMatch(originalTags, include) {
		return false
	}
	return !anyMatch(originalTags, exclude)
}

func anyMatch(tags []string, patterns []*regexp.Regexp) bool {
	for _, tag := range tags {
		for _, r := range patterns {
			if r.MatchString(tag) {
				return true
			}
		}
	}
	return false
}
