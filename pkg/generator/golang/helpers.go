package golang

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ensembledata/ensembledata-go/pkg/ir"
	"github.com/ensembledata/ensembledata-go/pkg/utils"
)

var validPackageName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// baseGoType is the Go type of a parameter value before optional wrapping.
func baseGoType(p ir.Param) string {
	switch p.Kind {
	case ir.KindInteger:
		return "int"
	case ir.KindBoolean:
		return "bool"
	case ir.KindList:
		return "[]string"
	default:
		return "string"
	}
}

// goType is the type of the Params struct field. Optional scalars use
// params.Optional; a nil list already means "not provided".
func goType(p ir.Param) string {
	t := baseGoType(p)
	if p.Required || p.Kind == ir.KindList {
		return t
	}
	return "params.Optional[" + t + "]"
}

func fieldName(p ir.Param) string {
	return utils.GoName(p.Name)
}

// argValue is the expression passed as params.Arg.Value for p.
func argValue(p ir.Param) string {
	field := "p." + fieldName(p)
	if p.Transform == ir.TransformJoinSemicolon {
		return "params.Joined(" + field + ", params.ListSeparator)"
	}
	return field
}

func paramsTypeName(g ir.Group, ep ir.Endpoint) string {
	return g.Name + ep.FunctionName + "Params"
}

// enumDoc documents the allowed values of every enum parameter of ep, one
// comment line per parameter.
func enumDoc(ep ir.Endpoint) string {
	var lines []string
	for _, p := range ep.Params {
		if p.Kind != ir.KindEnum || len(p.Enum) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s.", fieldName(p), strings.Join(p.Enum, ", ")))
	}
	return formatGoComment(strings.Join(lines, "\n"))
}

// formatGoComment formats a string as a proper Go comment, handling multiline descriptions
func formatGoComment(s string) string {
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			result = append(result, "//")
		} else {
			result = append(result, "// "+line)
		}
	}
	return strings.Join(result, "\n")
}

// sanitizePackageName reduces name to a valid Go package clause:
// "github.com/acme/ed-client" -> "edclient".
func sanitizePackageName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ToLower(name)
	name = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' {
			return r
		}
		return -1
	}, name)
	if !validPackageName.MatchString(name) {
		name = "client" + name
	}
	return name
}
