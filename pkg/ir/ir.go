package ir

// Kind is the Go-facing type of an endpoint parameter.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	// KindList is a list of strings sent as one joined value.
	KindList Kind = "list"
	// KindEnum is a string restricted to Param.Enum.
	KindEnum Kind = "enum"
)

// Transform names a conversion applied to a value before it is sent.
type Transform string

const (
	TransformNone Transform = ""
	// TransformJoinSemicolon joins a list with ";".
	TransformJoinSemicolon Transform = "join_with_semicolon"
)

// Param is a single query parameter of an endpoint.
type Param struct {
	// Name is the logical camelCase name exposed to callers.
	Name string
	// Wire is the query key sent to the API.
	Wire      string
	Kind      Kind
	Transform Transform
	Required  bool
	// Enum holds the allowed values, rendered as literals, when Kind is KindEnum.
	Enum        []string
	Description string
}

// Endpoint represents a single GET operation
type Endpoint struct {
	OperationID string
	// FunctionName is the exported method name derived from OperationID.
	FunctionName string
	Path         string
	Tag          string
	// OriginalTags are the operation's tags as declared, used for filtering.
	OriginalTags       []string
	Summary            string
	Deprecated         bool
	Params             []Param
	ReturnTopLevelData bool
}

// Group represents the endpoints sharing a tag
type Group struct {
	Tag string
	// Name is the Go identifier prefix of the group, e.g. "TikTok".
	Name      string
	Endpoints []Endpoint
}

// IR represents the endpoints of an OpenAPI document grouped by tag
type IR struct {
	Groups []Group
}

// EndpointCount returns the number of endpoints across all groups.
func (in IR) EndpointCount() int {
	n := 0
	for _, g := range in.Groups {
		n += len(g.Endpoints)
	}
	return n
}

// HasParams reports whether any endpoint of the group takes parameters.
func (g Group) HasParams() bool {
	for _, e := range g.Endpoints {
		if len(e.Params) > 0 {
			return true
		}
	}
	return false
}
