package hxattr

import (
	"bytes"
	"context"
	"strings"

	"golang.org/x/net/html"
)

// TestResult holds rendered markup for assertions.
//
// Attribute order is unspecified, so tests should not compare rendered
// strings containing more than one attribute. The Attr helpers parse the
// markup with an HTML5 parser and look attributes up by name instead.
type TestResult struct {
	HTML string

	doc *html.Node
}

// TestRender renders content into a buffer and parses the result.
//
//	result, err := hxattr.TestRender(hxattr.NewElement("input", attrs, nil))
//	if v, _ := result.Attr("input", "type"); v != "text" {
//	    t.Fatal("wrong type")
//	}
func TestRender(content Content) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), content)
}

// TestRenderWithContext is TestRender with a caller-supplied context, for
// content that reads request-scoped values.
func TestRenderWithContext(ctx context.Context, content Content) (*TestResult, error) {
	var buf bytes.Buffer
	if err := content.Render(ctx, &buf); err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(buf.String()))
	if err != nil {
		return nil, err
	}
	return &TestResult{HTML: buf.String(), doc: doc}, nil
}

// HTMLContains checks if the rendered markup contains s.
func (r *TestResult) HTMLContains(s string) bool {
	return strings.Contains(r.HTML, s)
}

// Find returns the first element with the given tag, or nil.
func (r *TestResult) Find(tag string) *html.Node {
	return find(r.doc, strings.ToLower(tag))
}

// Attrs returns the attributes of the first element with the given tag.
// Boolean attributes map to the empty string.
func (r *TestResult) Attrs(tag string) map[string]string {
	n := r.Find(tag)
	if n == nil {
		return nil
	}
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

// Attr returns one attribute of the first element with the given tag.
func (r *TestResult) Attr(tag, name string) (string, bool) {
	v, ok := r.Attrs(tag)[strings.ToLower(name)]
	return v, ok
}

// HasAttr checks if the first element with the given tag carries name.
func (r *TestResult) HasAttr(tag, name string) bool {
	_, ok := r.Attr(tag, name)
	return ok
}

// TextContent returns the concatenated text inside the first element with
// the given tag.
func (r *TestResult) TextContent(tag string) string {
	n := r.Find(tag)
	if n == nil {
		return ""
	}
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func find(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
