package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/util"
)

// Run fetches one page and writes it to options.Out.
// Plain output is one "id<TAB>title<TAB>facts" line per anime.
func Run(ctx context.Context, lister Lister, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	page := util.Max(options.Page, 1)

	var (
		result *source.Page[*source.AnimeSummary]
		err    error
	)

	if kind, ok := options.Catalog.Get(); ok {
		result, err = lister.Catalog(ctx, kind, page)
	} else {
		if options.Query == "" {
			return errors.New("empty query")
		}
		result, err = lister.Search(ctx, options.Query, page)
	}

	if err != nil {
		return err
	}

	log.Infof("found %d results on page %d", len(result.Results), result.CurrentPage)

	if options.Json {
		return writeJson(options.Out, result, options)
	}

	return writePlain(options.Out, result)
}

func writePlain(w io.Writer, page *source.Page[*source.AnimeSummary]) error {
	for _, anime := range page.Results {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", anime.ID, anime.Title, anime.Facts()); err != nil {
			return err
		}
	}

	if next := page.NextPage(); next > 0 {
		_, err := fmt.Fprintf(w, "# more results with --page %d\n", next)
		return err
	}

	return nil
}
