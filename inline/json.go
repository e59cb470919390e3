package inline

import (
	"encoding/json"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aizenverse/aizen/source"
	"github.com/invopop/jsonschema"
)

// Output is the JSON document written with --json.
type Output struct {
	Query       string                 `json:"query,omitempty"`
	Catalog     string                 `json:"catalog,omitempty"`
	Page        int                    `json:"page"`
	HasNextPage bool                   `json:"hasNextPage"`
	Result      []*source.AnimeSummary `json:"result"`
}

func writeJson(w io.Writer, page *source.Page[*source.AnimeSummary], options *Options) error {
	output := &Output{
		Query:  options.Query,
		Result: []*source.AnimeSummary{},
	}

	if kind, ok := options.Catalog.Get(); ok {
		output.Catalog = string(kind)
	}

	if page != nil {
		output.Page = page.CurrentPage
		output.HasNextPage = page.HasNextPage
		if page.Results != nil {
			output.Result = page.Results
		}
	}

	return json.NewEncoder(w).Encode(output)
}

// Schema describes Output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "animesummary", "output":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	return reflector.Reflect(&Output{})
}
