package generator

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/pthm/hxattr/lib/attrspec"
)

// DefaultImportPath is the import path of the runtime package generated code
// builds elements with.
const DefaultImportPath = "github.com/pthm/hxattr"

// Options configures the generator.
type Options struct {
	DryRun bool

	// Log receives a progress line per written file. Nil means silent.
	Log io.Writer

	// ImportPath of the hxattr runtime package. Defaults to DefaultImportPath.
	ImportPath string

	// Imports are added to every generated file, for packages the attribute
	// values refer to (strconv, fmt, ...).
	Imports []string
}

// Generator turns attribute declarations into Go code.
type Generator struct {
	opts Options
}

// New creates a new generator.
func New(opts Options) *Generator {
	if opts.ImportPath == "" {
		opts.ImportPath = DefaultImportPath
	}
	return &Generator{opts: opts}
}

// Element is one element declaration.
type Element struct {
	// Tag is the HTML tag of a simple element, or the struct type of a
	// custom element.
	Tag    string
	Custom bool
	Attrs  []attrspec.ElementAttribute

	// Content is a Go expression for the element's content. Empty means
	// none: simple elements self-close, custom elements leave Children unset.
	Content string
}

// Func is a generated function returning one element.
type Func struct {
	Name    string
	Params  string // Go parameter list, e.g. "id int, disabled bool"
	Element Element
}

// attrInfo is the per-attribute data handed to the templates.
type attrInfo struct {
	Prelude []string // statements run before the value, in their own block
	Assign  string   // statement storing the value
}

// elementInfo is the template data for one element expression.
type elementInfo struct {
	Pkg     string
	Tag     string
	Custom  bool
	Attrs   []attrInfo
	Content string
}

// Expr returns the gofmt'd source of an expression evaluating to the element:
// a *hxattr.Element for simple elements, a value of type Tag for custom ones.
func (g *Generator) Expr(el Element) ([]byte, error) {
	info, err := g.elementInfo(el)
	if err != nil {
		return nil, err
	}
	code, err := renderTemplate(exprTemplate, info)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return formatExpr(code)
}

// File returns a gofmt'd Go file declaring one function per Func.
func (g *Generator) File(pkgName string, funcs ...Func) ([]byte, error) {
	data := fileInfo{Package: pkgName}
	needsRuntime := false
	for _, fn := range funcs {
		info, err := g.elementInfo(fn.Element)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name, err)
		}
		expr, err := renderTemplate(exprTemplate, info)
		if err != nil {
			return nil, fmt.Errorf("%s: render template: %w", fn.Name, err)
		}

		result := fn.Element.Tag
		if !fn.Element.Custom {
			result = "*" + info.Pkg + ".Element"
			needsRuntime = true
		}
		data.Funcs = append(data.Funcs, funcInfo{
			Name:   fn.Name,
			Params: fn.Params,
			Result: result,
			Expr:   string(expr),
		})
	}

	if needsRuntime {
		data.Imports = append(data.Imports, g.opts.ImportPath)
	}
	data.Imports = append(data.Imports, g.opts.Imports...)

	code, err := renderTemplate(fileTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return formatSource(code)
}

// WriteFile generates a file and writes it to path.
func (g *Generator) WriteFile(path, pkgName string, funcs ...Func) error {
	if g.opts.Log != nil {
		fmt.Fprintf(g.opts.Log, "generating %s\n", path)
	}

	code, err := g.File(pkgName, funcs...)
	if err != nil {
		return err
	}
	if g.opts.DryRun {
		return nil
	}
	return os.WriteFile(path, code, 0644)
}

func (g *Generator) elementInfo(el Element) (elementInfo, error) {
	if err := attrspec.ValidateAll(el.Attrs, el.Custom); err != nil {
		return elementInfo{}, err
	}

	info := elementInfo{
		Pkg:     packageName(g.opts.ImportPath),
		Tag:     el.Tag,
		Custom:  el.Custom,
		Content: el.Content,
	}
	for _, attr := range el.Attrs {
		a, err := attributeInfo(attr, el.Custom)
		if err != nil {
			return elementInfo{}, err
		}
		info.Attrs = append(info.Attrs, a)
	}
	return info, nil
}

// attributeInfo splits an attribute value into the statements preceding it
// and the final expression. Single-statement values are used as they are.
func attributeInfo(attr attrspec.ElementAttribute, custom bool) (attrInfo, error) {
	key := attr.AttrKey()

	var prelude []string
	value := attr.ValueSource()
	if v, ok := attr.(attrspec.WithValue); ok {
		final, _ := v.Value.Final()
		if !final.Expr {
			return attrInfo{}, fmt.Errorf("%s: value of `%s` must end with an expression", v.Value.Pos, key)
		}
		for _, s := range v.Value.Stmts[:len(v.Value.Stmts)-1] {
			prelude = append(prelude, s.Source)
		}
		value = final.Source
	}

	if custom {
		return attrInfo{Prelude: prelude, Assign: fmt.Sprintf("_hxel.%s = %s", fieldName(key.Ident()), value)}, nil
	}
	return attrInfo{Prelude: prelude, Assign: fmt.Sprintf("_hxattrs.Set(%q, %s)", key.String(), value)}, nil
}

// fieldName converts "title" to "Title".
func fieldName(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// packageName returns the last element of an import path.
func packageName(importPath string) string {
	for i := len(importPath) - 1; i >= 0; i-- {
		if importPath[i] == '/' {
			return importPath[i+1:]
		}
	}
	return importPath
}
