// Package inline implements the non-interactive listing mode used by the search and catalog commands.
package inline

import (
	"context"
	"io"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/source"
	"github.com/samber/mo"
)

// Lister is the part of the API client inline mode needs.
type Lister interface {
	Catalog(ctx context.Context, kind api.Kind, page int) (*source.Page[*source.AnimeSummary], error)
	Search(ctx context.Context, query string, page int) (*source.Page[*source.AnimeSummary], error)
}

type Options struct {
	Out  io.Writer
	Json bool
	Page int

	// Exactly one of Query and Catalog is set.
	Query   string
	Catalog mo.Option[api.Kind]
}
