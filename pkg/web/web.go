// Package web serves the finner landing page and its static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/finnews/finner/internal"
)

var log = internal.GetLogger()

//go:embed static/*
var StaticFS embed.FS

//go:embed templates/*
var TemplatesFS embed.FS

// StaticHandler serves the embedded static directory. Mount it under
// /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
