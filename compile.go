package hxattr

import "github.com/pthm/hxattr/lib/attrspec"

// CompileAttribute parses and validates one attribute declaration. custom
// selects the custom-element rules.
//
//	attr, err := hxattr.CompileAttribute(`data-id={ strconv.Itoa(id) }`, false)
func CompileAttribute(src string, custom bool) (attrspec.ElementAttribute, error) {
	attr, err := attrspec.Parse(src)
	if err != nil {
		return nil, err
	}
	return attrspec.Validate(attr, custom)
}

// CompileAttributes parses and validates an attribute list. One bad attribute
// fails the whole list. filename is used in error positions only.
func CompileAttributes(filename string, src []byte, custom bool) ([]attrspec.ElementAttribute, error) {
	attrs, err := attrspec.ParseList(filename, src)
	if err != nil {
		return nil, err
	}
	if err := attrspec.ValidateAll(attrs, custom); err != nil {
		return nil, err
	}
	return attrs, nil
}
