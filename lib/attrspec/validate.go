package attrspec

import (
	"fmt"
	"go/token"
)

// Validate checks attr against the rules of the element kind it is declared
// on and returns it unchanged when allowed.
//
// Custom elements reject keys with more than one segment, since their
// attributes become struct fields. Simple elements reject punned keys with
// more than one segment, since there is no single variable to pun against.
// Neither kind accepts a punned Go keyword, which cannot name a value.
func Validate(attr ElementAttribute, custom bool) (ElementAttribute, error) {
	var err error
	if custom {
		attr, err = validateCustom(attr)
	} else {
		attr, err = validateSimple(attr)
	}
	if err != nil {
		return nil, err
	}
	return validatePunnedKeyword(attr)
}

// ValidateAll validates every attribute and stops at the first failure.
func ValidateAll(attrs []ElementAttribute, custom bool) error {
	for _, attr := range attrs {
		if _, err := Validate(attr, custom); err != nil {
			return err
		}
	}
	return nil
}

func validateCustom(attr ElementAttribute) (ElementAttribute, error) {
	key := attr.AttrKey()
	if key.Len() < 2 {
		return attr, nil
	}
	alt := key.Ident()
	return nil, &ValidationError{
		Pos:        key.Pos,
		Message:    fmt.Sprintf("can't use dash-delimited names on custom elements, did you mean `%s`?", alt),
		Suggestion: alt,
	}
}

func validateSimple(attr ElementAttribute) (ElementAttribute, error) {
	p, ok := attr.(Punned)
	if !ok || p.Key.Len() < 2 {
		return attr, nil
	}
	return nil, &ValidationError{
		Pos:        p.Key.Pos,
		Message:    fmt.Sprintf("can't use punning with dash-delimited name `%s`", p.Key),
		Suggestion: fmt.Sprintf("%s={%s}", p.Key, p.Key.Ident()),
	}
}

func validatePunnedKeyword(attr ElementAttribute) (ElementAttribute, error) {
	p, ok := attr.(Punned)
	if !ok || p.Key.Len() != 1 || !token.IsKeyword(p.Key.Segments[0]) {
		return attr, nil
	}
	return nil, &ValidationError{
		Pos:        p.Key.Pos,
		Message:    fmt.Sprintf("can't pun keyword `%s`, it does not name a value", p.Key),
		Suggestion: fmt.Sprintf("%s={...}", p.Key),
	}
}
