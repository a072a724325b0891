package web

import (
	"html/template"
	"net/http"
)

type Renderer interface {
	Templates() *template.Template
	Handlers() map[string]func(r http.ResponseWriter, w *http.Request)
	Data() map[string]interface{}
}
