// Package static serves the small set of files that live at the site root.
package static

import (
	"embed"
	"net/http"
)

//go:embed favicon.svg robots.txt
var files embed.FS

// Paths lists the URL paths served from the embedded files.
var Paths = []string{"/favicon.svg", "/robots.txt"}

// Register mounts a GET route for every root file on mux.
func Register(mux *http.ServeMux) {
	for _, path := range Paths {
		name := path[1:]
		mux.HandleFunc("GET "+path, func(w http.ResponseWriter, r *http.Request) {
			http.ServeFileFS(w, r, files, name)
		})
	}
}
