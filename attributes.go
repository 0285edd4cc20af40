package hxattr

import (
	"fmt"
	"strconv"
)

// BoolPrefix marks an Attributes key as a boolean flag. The renderer strips
// it and emits the bare name when the value is "true", nothing otherwise.
const BoolPrefix = "b!"

// Attributes maps attribute names to raw values.
//
// Values are written verbatim, without escaping. Iteration order, and so the
// order attributes are rendered in, is unspecified unless the element is
// marked Sorted.
type Attributes map[string]string

// SetText sets a name="value" attribute.
func (a Attributes) SetText(name, value string) {
	a[name] = value
}

// SetFlag sets a boolean attribute using the BoolPrefix convention.
//
//	attrs.SetFlag("disabled", true)  // renders ` disabled`
//	attrs.SetFlag("disabled", false) // renders nothing
func (a Attributes) SetFlag(name string, on bool) {
	a[BoolPrefix+name] = strconv.FormatBool(on)
}

// Set stores v under name, choosing the representation from its type: bools
// become flags, strings and fmt.Stringers are stored as text, and anything
// else is formatted with fmt.Sprint. Generated code calls Set for every simple
// element attribute.
func (a Attributes) Set(name string, v any) {
	switch v := v.(type) {
	case bool:
		a.SetFlag(name, v)
	case string:
		a.SetText(name, v)
	case fmt.Stringer:
		a.SetText(name, v.String())
	default:
		a.SetText(name, fmt.Sprint(v))
	}
}
