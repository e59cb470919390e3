package player

import (
	"context"

	"github.com/aizenverse/aizen/open"
)

// Browser opens the target in the default web browser. It is meant for the
// embeddable player page, which needs no extra headers.
type Browser struct {
	// App overrides the default handler when set.
	App string
}

func (b *Browser) Name() string { return NameBrowser }

func (b *Browser) Play(ctx context.Context, target Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return open.StartWith(target.URL, b.App)
}
