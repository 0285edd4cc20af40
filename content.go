package hxattr

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Content is anything that renders itself into a writer. It is
// templ.Component, so templ components nest inside elements and every
// Element can be used from a templ template.
type Content = templ.Component

var _ Content = (*Element)(nil)

// Text is character data. It is HTML-escaped when rendered.
type Text string

func (t Text) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, templ.EscapeString(string(t)))
	return err
}

// Raw is markup written verbatim.
type Raw string

func (r Raw) Render(ctx context.Context, w io.Writer) error {
	return templ.Raw(string(r)).Render(ctx, w)
}

// Group renders its items in order. A nil item is skipped.
type Group []Content

func (g Group) Render(ctx context.Context, w io.Writer) error {
	for _, c := range g {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
