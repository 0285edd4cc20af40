package hxattr

import (
	"errors"

	"github.com/pthm/hxattr/lib/attrspec"
	"github.com/pthm/hxattr/lib/encoding"
)

// Sentinel errors for compile and manifest operations.
var (
	ErrSyntax           = attrspec.ErrSyntax
	ErrValidation       = attrspec.ErrValidation
	ErrInvalidManifest  = errors.New("hxattr: invalid manifest")
	ErrSignatureInvalid = errors.New("hxattr: manifest signature verification failed")
)

// IsSyntaxError checks if err is a malformed attribute declaration.
func IsSyntaxError(err error) bool {
	return errors.Is(err, ErrSyntax)
}

// IsValidationError checks if err is an attribute the element kind rejects.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsManifestError checks if err came from loading a manifest.
func IsManifestError(err error) bool {
	return errors.Is(err, ErrInvalidManifest) || errors.Is(err, ErrSignatureInvalid)
}

// Suggestion returns the fix carried by a validation error, if any.
func Suggestion(err error) (string, bool) {
	var ve *attrspec.ValidationError
	if errors.As(err, &ve) && ve.Suggestion != "" {
		return ve.Suggestion, true
	}
	return "", false
}

// wrapEncodingError maps encoding package errors onto hxattr sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return errors.Join(ErrInvalidManifest, err)
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	return err
}
