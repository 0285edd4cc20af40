// Package hxattrecho provides Echo framework integration for hxattr elements.
//
// Render an element from a handler:
//
//	func handler(c echo.Context) error {
//	    return hxattrecho.Render(c, http.StatusOK, hxattr.NewElement("p", nil, hxattr.Text("hi")))
//	}
//
// Or install the Renderer and use c.Render:
//
//	e := echo.New()
//	e.Renderer = hxattrecho.Renderer{}
//	...
//	return c.Render(http.StatusOK, "", el)
package hxattrecho

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pthm/hxattr"
)

// Render writes content to the Echo response with the given status code.
func Render(c echo.Context, code int, content hxattr.Content) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	res.WriteHeader(code)
	return content.Render(c.Request().Context(), res)
}

// Renderer is an echo.Renderer for hxattr content. The template name is
// ignored; data must implement hxattr.Content.
type Renderer struct{}

// Render implements echo.Renderer.
func (Renderer) Render(w io.Writer, _ string, data interface{}, c echo.Context) error {
	content, ok := data.(hxattr.Content)
	if !ok {
		return fmt.Errorf("hxattrecho: cannot render %T", data)
	}
	return content.Render(c.Request().Context(), w)
}

// Handler adapts a function producing content into an echo.HandlerFunc that
// renders it with status 200.
func Handler(fn func(c echo.Context) (hxattr.Content, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		content, err := fn(c)
		if err != nil {
			return err
		}
		return Render(c, 200, content)
	}
}
