// Package attrspec parses and validates element attribute declarations.
//
// An attribute declaration is a dash-joined key, optionally followed by an
// inline Go block producing its value:
//
//	disabled                         // punned: value is the variable `disabled`
//	data-id={ strconv.Itoa(item.ID) } // valued
//	title={ name := user.Name; "Hi " + name }
//
// The grammar is
//
//	attribute = ident { "-" ident } [ "=" "{" stmt { stmt } "}" ] .
//
// Go keywords are accepted as key segments, so `type` and `for` work as
// attribute names.
//
// Parsing and validation are separate steps. Parse turns source into an
// ElementAttribute or a *SyntaxError; Validate applies the rules of the element
// kind the attribute belongs to and returns a *ValidationError carrying a
// suggested fix:
//
//	attr, err := attrspec.Parse(`data-id={ id }`)
//	if err != nil {
//	    return err
//	}
//	attr, err = attrspec.Validate(attr, isCustomElement)
//
// Custom elements map attributes onto struct fields, so their keys must be a
// single segment. Simple elements accept dash-joined keys, but only with an
// explicit value: a punned key must name a single variable.
package attrspec
