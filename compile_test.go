package hxattr

import (
	"testing"

	"github.com/pthm/hxattr/lib/attrspec"
)

func TestCompileAttribute(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		custom     bool
		wantErr    error
		suggestion string
	}{
		{name: "simple valued dash key", src: `data-id={ id }`},
		{name: "simple punned", src: `disabled`},
		{name: "simple punned dash key", src: `aria-hidden`, wantErr: ErrValidation, suggestion: "aria-hidden={aria_hidden}"},
		{name: "custom single segment", src: `title={ t }`, custom: true},
		{name: "custom punned", src: `title`, custom: true},
		{name: "custom dash key", src: `data-id={ id }`, custom: true, wantErr: ErrValidation, suggestion: "data_id"},
		{name: "syntax error", src: `data-`, wantErr: ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr, err := CompileAttribute(tt.src, tt.custom)
			switch tt.wantErr {
			case nil:
				if err != nil {
					t.Fatalf("CompileAttribute(%q) failed: %v", tt.src, err)
				}
				if attr == nil {
					t.Fatal("CompileAttribute returned nil attribute")
				}
			case ErrSyntax:
				if !IsSyntaxError(err) {
					t.Fatalf("CompileAttribute(%q) = %v, want syntax error", tt.src, err)
				}
			case ErrValidation:
				if !IsValidationError(err) {
					t.Fatalf("CompileAttribute(%q) = %v, want validation error", tt.src, err)
				}
				fix, ok := Suggestion(err)
				if !ok || fix != tt.suggestion {
					t.Errorf("Suggestion() = %q, %v; want %q", fix, ok, tt.suggestion)
				}
			}
		})
	}
}

func TestCompileAttributes(t *testing.T) {
	attrs, err := CompileAttributes("form.go", []byte(`action={ url } method={"post"} novalidate`), false)
	if err != nil {
		t.Fatalf("CompileAttributes failed: %v", err)
	}
	if len(attrs) != 3 {
		t.Fatalf("got %d attributes, want 3", len(attrs))
	}
	if _, ok := attrs[2].(attrspec.Punned); !ok {
		t.Errorf("novalidate should be punned, got %T", attrs[2])
	}
}

func TestCompileAttributesFailsWholeList(t *testing.T) {
	_, err := CompileAttributes("card.go", []byte(`title={ t } sub-title={ s }`), true)
	if !IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if got := err.Error(); got != "card.go:1:13: can't use dash-delimited names on custom elements, did you mean `sub_title`?" {
		t.Errorf("Error() = %q", got)
	}
}
