package web

import (
	"log"
	"net/http"
)

type Server struct {
	renderer Renderer
	handler  *http.ServeMux
}

func NewServer(renderer Renderer) *Server {
	s := &Server{
		renderer: renderer,
	}

	handler := http.NewServeMux()
	handler.HandleFunc("/", s.IndexHandler)

	for path, pageHandler := range renderer.Handlers() {
		handler.HandleFunc(path, pageHandler)
	}

	s.handler = handler

	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start(addr string) error {
	log.Printf("listening on %s …", addr)
	return http.ListenAndServe(addr, s.handler)
}

// IndexHandler is the main entrypoint for the chart page
func (s *Server) IndexHandler(w http.ResponseWriter, _ *http.Request) {
	err := s.renderer.Templates().ExecuteTemplate(w, "index", s.renderer.Data())
	if err != nil {
		log.Printf("couldn't execute template for index %s", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
