package hxattr

import (
	"context"
	"io"
	"sort"
	"strings"
)

// Element is a single HTML element ready to be rendered.
//
// An Element is meant to be rendered once: rendering drains its Attributes
// map.
type Element struct {
	TagName    string
	Attributes Attributes // may be nil
	// Content goes between the tags; nil makes the tag self-closing. A nil
	// *Element as Content renders nothing inside an open/close pair. Any
	// other typed nil, such as a nil templ.ComponentFunc, panics.
	Content Content

	sorted bool
}

// NewElement returns an element for tag. attrs and content may be nil.
func NewElement(tag string, attrs Attributes, content Content) *Element {
	return &Element{TagName: tag, Attributes: attrs, Content: content}
}

// Sorted makes the element emit its attributes ordered by name, for output
// that has to be stable across runs (snapshots, golden files).
func (e *Element) Sorted() *Element {
	e.sorted = true
	return e
}

// Render writes the element to w.
//
// Without content the tag is self-closing:
//
//	<input type="text" disabled/>
//
// With content the content renders itself between the opening and closing
// tags. Tag and attribute names are written as given. Write errors are
// returned as is and leave w partially written. A nil *Element renders
// nothing.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	if e == nil {
		return nil
	}
	if _, err := io.WriteString(w, "<"+e.TagName); err != nil {
		return err
	}
	if err := writeAttributes(w, e.Attributes, e.sorted); err != nil {
		return err
	}

	if e.Content == nil {
		_, err := io.WriteString(w, "/>")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if err := e.Content.Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+e.TagName+">")
	return err
}

// Render writes a tag with optional attributes and content to w.
func Render(w io.Writer, tag string, attrs Attributes, content Content) error {
	return NewElement(tag, attrs, content).Render(context.Background(), w)
}

// WriteAttributes writes every attribute in attrs, each preceded by a space,
// and removes it from the map. Order is unspecified.
//
// Names starting with BoolPrefix are flags: the prefix is stripped and the
// bare name is written only if the value is exactly "true". Other attributes
// are written as name="value" with the value unescaped.
func WriteAttributes(w io.Writer, attrs Attributes) error {
	return writeAttributes(w, attrs, false)
}

func writeAttributes(w io.Writer, attrs Attributes, sorted bool) error {
	if len(attrs) == 0 {
		return nil
	}

	if !sorted {
		for name, value := range attrs {
			delete(attrs, name)
			if err := writeAttribute(w, name, value); err != nil {
				return err
			}
		}
		return nil
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.TrimPrefix(names[i], BoolPrefix) < strings.TrimPrefix(names[j], BoolPrefix)
	})
	for _, name := range names {
		value := attrs[name]
		delete(attrs, name)
		if err := writeAttribute(w, name, value); err != nil {
			return err
		}
	}
	return nil
}

func writeAttribute(w io.Writer, name, value string) error {
	if flag, ok := strings.CutPrefix(name, BoolPrefix); ok {
		if value != "true" {
			return nil
		}
		_, err := io.WriteString(w, " "+flag)
		return err
	}
	_, err := io.WriteString(w, " "+name+`="`+value+`"`)
	return err
}
