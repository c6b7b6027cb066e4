// Package web содержит HTML-шаблоны и статические файлы, встроенные в бинарник.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html static/*
var files embed.FS

// Templates разбирает все шаблоны из templates/.
// Имена шаблонов совпадают с именами файлов: "index.html", "upload.html" и т.д.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}

// StaticFS возвращает файловую систему со статикой для router.StaticFS.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// Путь задан константой и проверяется при компиляции go:embed
		panic(err)
	}
	return http.FS(sub)
}
