package generator

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm/hxattr/lib/attrspec"
)

func mustParseList(t *testing.T, src string) []attrspec.ElementAttribute {
	t.Helper()
	attrs, err := attrspec.ParseList("", []byte(src))
	if err != nil {
		t.Fatalf("ParseList(%q) error = %v", src, err)
	}
	return attrs
}

func TestExprSimple(t *testing.T) {
	g := New(Options{})
	code, err := g.Expr(Element{
		Tag:   "input",
		Attrs: mustParseList(t, `type={"checkbox"} checked data-id={ strconv.Itoa(id) }`),
	})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	out := string(code)

	for _, want := range []string{
		"func() *hxattr.Element {",
		"_hxattrs := make(hxattr.Attributes, 3)",
		`_hxattrs.Set("type", "checkbox")`,
		`_hxattrs.Set("checked", checked)`,
		`_hxattrs.Set("data-id", strconv.Itoa(id))`,
		`return hxattr.NewElement("input", _hxattrs, nil)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := parser.ParseExpr(out); err != nil {
		t.Errorf("output is not a valid expression: %v\n%s", err, out)
	}
}

func TestExprContent(t *testing.T) {
	g := New(Options{})
	code, err := g.Expr(Element{
		Tag:     "p",
		Content: `hxattr.Text("hello")`,
	})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	if !strings.Contains(string(code), `hxattr.NewElement("p", _hxattrs, hxattr.Text("hello"))`) {
		t.Errorf("content not passed through:\n%s", code)
	}
}

func TestExprMultiStatement(t *testing.T) {
	g := New(Options{})
	code, err := g.Expr(Element{
		Tag:   "div",
		Attrs: mustParseList(t, `class={ c := "card"; if active { c += " active" }; c }`),
	})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	out := string(code)

	for _, want := range []string{
		"\t{\n",
		`c := "card"`,
		`_hxattrs.Set("class", c)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := parser.ParseExpr(out); err != nil {
		t.Errorf("output is not a valid expression: %v\n%s", err, out)
	}
}

func TestExprCustom(t *testing.T) {
	g := New(Options{})
	code, err := g.Expr(Element{
		Tag:     "Card",
		Custom:  true,
		Attrs:   mustParseList(t, `title user_name={ u.Name }`),
		Content: "body",
	})
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}
	out := string(code)

	for _, want := range []string{
		"func() Card {",
		"var _hxel Card",
		"_hxel.Title = title",
		"_hxel.User_name = u.Name",
		"_hxel.Children = body",
		"return _hxel",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hxattr") {
		t.Errorf("custom element should not reference the runtime package:\n%s", out)
	}
}

func TestExprUserNamesDoNotShadowLocals(t *testing.T) {
	g := New(Options{})

	tests := []struct {
		name   string
		el     Element
		want   string
		reject string
	}{
		{
			name: "punned attrs",
			el:   Element{Tag: "div", Attrs: mustParseList(t, `attrs`)},
			want: `_hxattrs.Set("attrs", attrs)`,
		},
		{
			name:   "block declares attrs",
			el:     Element{Tag: "div", Attrs: mustParseList(t, `title={ attrs := "x"; attrs }`)},
			want:   `_hxattrs.Set("title", attrs)`,
			reject: "attrs.Set(",
		},
		{
			name: "custom punned el",
			el:   Element{Tag: "Card", Custom: true, Attrs: mustParseList(t, `el`)},
			want: "_hxel.El = el",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := g.Expr(tt.el)
			if err != nil {
				t.Fatalf("Expr() error = %v", err)
			}
			out := string(code)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
			if tt.reject != "" && strings.Contains(strings.ReplaceAll(out, "_hxattrs.Set(", ""), tt.reject) {
				t.Errorf("output contains %q:\n%s", tt.reject, out)
			}
			if _, err := parser.ParseExpr(out); err != nil {
				t.Errorf("output is not a valid expression: %v\n%s", err, out)
			}
		})
	}
}

func TestExprValidationError(t *testing.T) {
	g := New(Options{})

	_, err := g.Expr(Element{Tag: "Card", Custom: true, Attrs: mustParseList(t, `data-id={ 1 }`)})
	if !errors.Is(err, attrspec.ErrValidation) {
		t.Errorf("custom dashed key: error = %v, want ErrValidation", err)
	}

	_, err = g.Expr(Element{Tag: "div", Attrs: mustParseList(t, `aria-label`)})
	if !errors.Is(err, attrspec.ErrValidation) {
		t.Errorf("punned dashed key: error = %v, want ErrValidation", err)
	}

	_, err = g.Expr(Element{Tag: "input", Attrs: mustParseList(t, `type`)})
	if !errors.Is(err, attrspec.ErrValidation) {
		t.Errorf("punned keyword: error = %v, want ErrValidation", err)
	}
}

func TestExprFinalStatementNotExpression(t *testing.T) {
	g := New(Options{})
	_, err := g.Expr(Element{Tag: "div", Attrs: mustParseList(t, `class={ c := "x" }`)})
	if err == nil {
		t.Fatal("expected error for value without final expression")
	}
	if !strings.Contains(err.Error(), "must end with an expression") {
		t.Errorf("error = %v", err)
	}
}

func TestFile(t *testing.T) {
	g := New(Options{Imports: []string{"strconv"}})
	code, err := g.File("views",
		Func{
			Name:   "SaveButton",
			Params: "id int, disabled bool",
			Element: Element{
				Tag:   "button",
				Attrs: mustParseList(t, `data-id={ strconv.Itoa(id) } b-disabled={ disabled }`),
			},
		},
		Func{
			Name:    "UserCard",
			Params:  "title string",
			Element: Element{Tag: "Card", Custom: true, Attrs: mustParseList(t, `title`)},
		},
	)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	out := string(code)

	for _, want := range []string{
		"// Code generated by hxattr. DO NOT EDIT.",
		"package views",
		`"github.com/pthm/hxattr"`,
		`"strconv"`,
		"func SaveButton(id int, disabled bool) *hxattr.Element {",
		"func UserCard(title string) Card {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "views_hx.go", code, 0); err != nil {
		t.Errorf("output is not a valid file: %v\n%s", err, out)
	}
}

func TestFileNoRuntimeImport(t *testing.T) {
	g := New(Options{})
	code, err := g.File("views", Func{
		Name:    "UserCard",
		Element: Element{Tag: "Card", Custom: true},
	})
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if strings.Contains(string(code), "import") {
		t.Errorf("unexpected import block:\n%s", code)
	}
}

func TestFileErrorNamesFunc(t *testing.T) {
	g := New(Options{})
	_, err := g.File("views", Func{
		Name:    "Broken",
		Element: Element{Tag: "Card", Custom: true, Attrs: mustParseList(t, `data-id={ 1 }`)},
	})
	if err == nil || !strings.HasPrefix(err.Error(), "Broken: ") {
		t.Errorf("error = %v, want prefix %q", err, "Broken: ")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "views_hx.go")
	fn := Func{Name: "Hello", Element: Element{Tag: "br"}}

	if err := New(Options{DryRun: true}).WriteFile(path, "views", fn); err != nil {
		t.Fatalf("dry run error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("dry run wrote %s", path)
	}

	var log bytes.Buffer
	if err := New(Options{Log: &log}).WriteFile(path, "views", fn); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if got, want := log.String(), "generating "+path+"\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "func Hello() *hxattr.Element {") {
		t.Errorf("unexpected file:\n%s", data)
	}
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"title", "Title"},
		{"Title", "Title"},
		{"user_name", "User_name"},
		{"é", "É"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := fieldName(tt.input); got != tt.want {
				t.Errorf("fieldName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackageName(t *testing.T) {
	if got := packageName(DefaultImportPath); got != "hxattr" {
		t.Errorf("packageName() = %q", got)
	}
	if got := packageName("ui"); got != "ui" {
		t.Errorf("packageName() = %q", got)
	}
}
