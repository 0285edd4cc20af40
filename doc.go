// Package hxattr compiles declarative element attributes and renders
// elements to HTML.
//
// The package has two halves that meet only through data.
//
// # Compile time
//
// Attribute declarations are written as dash-joined keys with an optional
// inline Go block:
//
//	type={"checkbox"} data-id={ strconv.Itoa(item.ID) } checked
//
// CompileAttributes parses such a list and validates it for the element kind.
// Custom elements (components whose attributes become struct fields) only
// accept single-segment keys; simple elements accept dash-joined keys but
// cannot pun them:
//
//	attrs, err := hxattr.CompileAttributes("page.go", src, false)
//	if hxattr.IsValidationError(err) {
//	    fix, _ := hxattr.Suggestion(err)
//	    ...
//	}
//
// The parser and validator live in lib/attrspec. lib/generator turns
// validated attributes into Go code, and lib/encoding stores them as signed
// manifests.
//
// # Render time
//
// An Element is a tag, an Attributes map and optional Content:
//
//	attrs := hxattr.Attributes{"type": "text"}
//	attrs.SetFlag("disabled", true)
//	hxattr.Render(w, "input", attrs, nil) // <input type="text" disabled/>
//
// Boolean attributes use the "b!" name prefix: `b!disabled` with value "true"
// renders as a bare `disabled`, with any other value it is omitted. Attribute
// values are written without escaping; whoever builds the map is responsible
// for escaping values that need it. Attribute order is unspecified unless the
// element is marked Sorted.
//
// Content is templ.Component, so templ components nest inside elements and
// elements nest inside templ templates.
package hxattr
