package hxattr

import "net/http"

// Serve writes content to the HTTP response.
//
// Sets Content-Type to text/html and renders using the request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxattr.Serve(w, r, hxattr.NewElement("p", nil, hxattr.Text("hello")))
//	}
func Serve(w http.ResponseWriter, r *http.Request, content Content) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return content.Render(r.Context(), w)
}
